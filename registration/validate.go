package registration

import (
	"net/url"
	"regexp"
	"strings"

	"sokohub/models"
)

// phonePattern accepts digits, spaces and dashes, 7 to 15 digits total.
var phonePattern = regexp.MustCompile(`^[0-9][0-9 \-]{5,17}[0-9]$`)

func validateStep1(data models.RegistrationStep1) error {
	if strings.TrimSpace(data.Country) == "" {
		return newValidationError("country", "country is required")
	}
	if !data.AgreeToTerms {
		return newValidationError("agreeToTerms", "terms must be accepted")
	}
	return nil
}

func validateStep2(data models.RegistrationStep2) error {
	if strings.TrimSpace(data.FullName) == "" {
		return newValidationError("fullName", "full name is required")
	}
	if !strings.HasPrefix(data.CountryCode, "+") {
		return newValidationError("countryCode", "country code must start with +")
	}
	if !phonePattern.MatchString(data.PhoneNumber) {
		return newValidationError("phoneNumber", "phone number is not valid")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return newValidationError("password", "password must be at least 8 characters")
	}
	return nil
}

func validateStep5(data models.RegistrationStep5) error {
	if len(strings.TrimSpace(data.BusinessName)) < 3 {
		return newValidationError("businessName", "business name is required")
	}
	if strings.TrimSpace(data.BusinessCategory) == "" {
		return newValidationError("businessCategory", "business category is required")
	}
	if len(strings.TrimSpace(data.BusinessAddress)) < 3 {
		return newValidationError("businessAddress", "business address is required")
	}
	if len(strings.TrimSpace(data.NationalID)) < 10 {
		return newValidationError("nationalId", "national id must be at least 10 characters")
	}
	if data.BusinessWebsite != "" {
		u, err := url.Parse(data.BusinessWebsite)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return newValidationError("businessWebsite", "website must be a valid URL")
		}
	}
	return nil
}

func validateStep6(data models.RegistrationStep6) error {
	if len(data.NationalIDFront) == 0 {
		return newValidationError("nationalIdFront", "national id front is required")
	}
	if len(data.NationalIDBack) == 0 {
		return newValidationError("nationalIdBack", "national id back is required")
	}
	if len(data.CommercialRegistration) == 0 {
		return newValidationError("commercialRegistration", "commercial registration is required")
	}
	if len(data.TaxRegistration) == 0 {
		return newValidationError("taxRegistration", "tax registration is required")
	}
	return nil
}

// validateComplete checks that every step of the wizard has been filled in
// before submission.
func validateComplete(data models.RegistrationData) error {
	if err := validateStep1(models.RegistrationStep1{Country: data.Country, AgreeToTerms: data.AgreeToTerms}); err != nil {
		return err
	}
	if err := validateStep2(models.RegistrationStep2{FullName: data.FullName, CountryCode: data.CountryCode, PhoneNumber: data.PhoneNumber}); err != nil {
		return err
	}
	if !data.IsPhoneVerified {
		return newValidationError("isPhoneVerified", "phone number must be verified")
	}
	if err := validatePassword(data.Password); err != nil {
		return err
	}
	if err := validateStep5(models.RegistrationStep5{
		BusinessName:     data.BusinessName,
		BusinessCategory: data.BusinessCategory,
		BusinessAddress:  data.BusinessAddress,
		NationalID:       data.NationalID,
		BusinessWebsite:  data.BusinessWebsite,
	}); err != nil {
		return err
	}
	if err := validateStep6(models.RegistrationStep6{
		NationalIDFront:        data.NationalIDFront,
		NationalIDBack:         data.NationalIDBack,
		CommercialRegistration: data.CommercialRegistration,
		TaxRegistration:        data.TaxRegistration,
	}); err != nil {
		return err
	}
	if strings.TrimSpace(data.Signature) == "" {
		return newValidationError("signature", "signature is required")
	}
	return nil
}
