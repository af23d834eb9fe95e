package models

import "time"

// FileRef points at an uploaded document. The wizard only records the
// reference; storage of the file itself happens elsewhere.
type FileRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// RegistrationData is the accumulated payload of the merchant registration
// wizard, assembled step by step.
type RegistrationData struct {
	// Step 1 — country and terms.
	Country      string `json:"country"`
	AgreeToTerms bool   `json:"agreeToTerms"`

	// Step 2 — contact details.
	FullName    string `json:"fullName"`
	CountryCode string `json:"countryCode"`
	PhoneNumber string `json:"phoneNumber"`

	// Step 3 — phone verification.
	IsPhoneVerified bool `json:"isPhoneVerified"`

	// Step 4 — credentials.
	Password string `json:"password"`

	// Step 5 — business profile.
	BusinessName     string    `json:"businessName"`
	BusinessCategory string    `json:"businessCategory"`
	BusinessAddress  string    `json:"businessAddress"`
	NationalID       string    `json:"nationalId"`
	BusinessWebsite  string    `json:"businessWebsite,omitempty"`
	ContractFiles    []FileRef `json:"contractFiles,omitempty"`

	// Step 6 — document uploads.
	NationalIDFront        []FileRef `json:"nationalIdFront,omitempty"`
	NationalIDBack         []FileRef `json:"nationalIdBack,omitempty"`
	CommercialRegistration []FileRef `json:"commercialRegistration,omitempty"`
	TaxRegistration        []FileRef `json:"taxRegistration,omitempty"`

	// Step 7 — signature.
	Signature string `json:"signature,omitempty"`
}

// RegistrationSession holds all transient data during multi-step
// registration, keyed by a server-generated session id.
type RegistrationSession struct {
	SessionID     string           `json:"sessionId"`
	Data          RegistrationData `json:"data"`
	CreatedAt     time.Time        `json:"createdAt"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
	Submitted     bool             `json:"submitted"`
}

// Step payloads, one per wizard step that carries input.

type RegistrationStep1 struct {
	Country      string `json:"country"`
	AgreeToTerms bool   `json:"agreeToTerms"`
}

type RegistrationStep2 struct {
	FullName    string `json:"fullName"`
	CountryCode string `json:"countryCode"`
	PhoneNumber string `json:"phoneNumber"`
}

type RegistrationStep5 struct {
	BusinessName     string    `json:"businessName"`
	BusinessCategory string    `json:"businessCategory"`
	BusinessAddress  string    `json:"businessAddress"`
	NationalID       string    `json:"nationalId"`
	BusinessWebsite  string    `json:"businessWebsite,omitempty"`
	ContractFiles    []FileRef `json:"contractFiles,omitempty"`
}

type RegistrationStep6 struct {
	NationalIDFront        []FileRef `json:"nationalIdFront"`
	NationalIDBack         []FileRef `json:"nationalIdBack"`
	CommercialRegistration []FileRef `json:"commercialRegistration"`
	TaxRegistration        []FileRef `json:"taxRegistration"`
}
