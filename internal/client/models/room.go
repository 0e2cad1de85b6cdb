package models

// Room is a sala record. From the client's point of view the name acts as
// the primary key: edits are a full-record PUT and deletes are keyed by name.
type Room struct {
	Name             string `json:"sala"`
	Description      string `json:"descricao"`
	Location         string `json:"localizacao"`
	ImageURL         string `json:"link_imagem"`
	Responsible      string `json:"responsavel"`
	ItemCount        int    `json:"quantidade_itens"`
	ResponsibleEmail string `json:"email_responsavel"`
}
