package schema

import "eventory/internal/domain"

// FormUpdate is the payload of the update-form endpoint. All fields except form_id are optional;
// keys not listed here are rejected.
type FormUpdate struct {
	FormID                  string  `json:"form_id" validate:"required"`
	Title                   *string `json:"form_title" validate:"omitnil,min=1,max=73"`
	Description             *string `json:"description" validate:"omitnil,max=500"`
	YourNameLabel           *string `json:"your_name_label" validate:"omitnil,min=1,max=64"`
	YourNamePlaceholder     *string `json:"your_name_placeholder" validate:"omitnil,max=128"`
	YourNameDisplay         *bool   `json:"your_name_display"`
	EmailAddressLabel       *string `json:"email_address_label" validate:"omitnil,min=1,max=64"`
	EmailAddressPlaceholder *string `json:"email_address_placeholder" validate:"omitnil,max=128"`
	EmailAddressDisplay     *bool   `json:"email_address_display"`
	ButtonLabel             *string `json:"button_label" validate:"omitnil,min=1,max=32"`
	PrimaryColor            *string `json:"primary_color" validate:"omitnil,hexcolor"`
}

func (FormUpdate) messages() map[string]string {
	return map[string]string{
		"form_id.required":       "form_id is required",
		"form_title.min":         "Form title must not be empty",
		"form_title.max":         "Form title must not exceed 73 characters long",
		"primary_color.hexcolor": "Primary color must be a hex color such as #7c3aed",
	}
}

// ParseFormUpdate decodes and validates an update-form payload, rejecting unknown keys.
func ParseFormUpdate(data []byte) (FormUpdate, error) {
	var u FormUpdate
	if err := Parse(data, &u, true); err != nil {
		return FormUpdate{}, err
	}
	return u, nil
}

// Patch converts the payload to a domain patch.
func (u FormUpdate) Patch() domain.RsvpFormPatch {
	return domain.RsvpFormPatch{
		Title:                   u.Title,
		Description:             u.Description,
		YourNameLabel:           u.YourNameLabel,
		YourNamePlaceholder:     u.YourNamePlaceholder,
		YourNameDisplay:         u.YourNameDisplay,
		EmailAddressLabel:       u.EmailAddressLabel,
		EmailAddressPlaceholder: u.EmailAddressPlaceholder,
		EmailAddressDisplay:     u.EmailAddressDisplay,
		ButtonLabel:             u.ButtonLabel,
		PrimaryColor:            u.PrimaryColor,
	}
}
