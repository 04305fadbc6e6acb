package mail

type EmailSender struct {
	Host      string
	Port      int
	FromEmail string
	FromName  string
}

type prospectConfirmationData struct {
	FirstName string
	FromName  string
}

type attorneyNotificationData struct {
	FirstName string
	LastName  string
	Email     string
	LeadID    string
}
