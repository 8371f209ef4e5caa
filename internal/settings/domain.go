package settings

// CompanyProfile holds the distributor's identity shown on the settings page.
type CompanyProfile struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
	Address string `json:"address"`
}

// SystemSettings holds the operational knobs consumed by the classifiers.
type SystemSettings struct {
	StockAlertThreshold int  `json:"stockAlertThreshold" validate:"required,gte=1"`
	ExpiryAlertDays     int  `json:"expiryAlertDays" validate:"required,gte=1"`
	EmailNotifications  bool `json:"emailNotifications"`
	SMSNotifications    bool `json:"smsNotifications"`
	AutoReorder         bool `json:"autoReorder"`
}

// Settings is the full settings document served over HTTP.
type Settings struct {
	Company CompanyProfile `json:"company"`
	System  SystemSettings `json:"system"`
}
