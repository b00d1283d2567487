package models

// Person is a name/phone pair from the leadership directories. A missing
// phone is the literal string "NA", matching the source sheets.
type Person struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// OrgContactRecord is the contact row shape shared by the zone and
// org-district directories.
type OrgContactRecord struct {
	Name           string `json:"name"`
	InchargeName   string `json:"inchargeName"`
	InchargePhone  string `json:"inchargePhone"`
	PresidentName  string `json:"presidentName"`
	PresidentPhone string `json:"presidentPhone"`
}

// MandalContactRecord is the mandal directory row: president and prabhari.
type MandalContactRecord struct {
	Name      string `json:"name"`
	President Person `json:"president"`
	Prabhari  Person `json:"prabhari"`
}

// LocalBodyContactRecord is the local-body directory row.
type LocalBodyContactRecord struct {
	Name      string `json:"name"`
	President Person `json:"president"`
	Incharge  Person `json:"incharge"`
	Secretary Person `json:"secretary"`
}
