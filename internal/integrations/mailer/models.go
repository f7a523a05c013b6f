package mailer

// Message письмо, готовое к отправке
type Message struct {
	To      string
	ToName  string
	Subject string
	HTML    string
}

// From адрес отправителя
type From struct {
	Email string
	Name  string
}
