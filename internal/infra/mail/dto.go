package mail

// Message is a rendered email ready for delivery.
type Message struct {
	To      []string
	Subject string
	Text    string
	HTML    string
}

type StaffAlertData struct {
	DealershipName     string
	ContactName        string
	Email              string
	Phone              string
	Address            string
	City               string
	State              string
	ZipCode            string
	DealerLicense      string
	MonthlyInventory   string
	CurrentSoftware    string
	SalesAgent         string
	InterestedFeatures []string
}

type WelcomeEmailData struct {
	DealershipName string
}
