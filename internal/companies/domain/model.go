package domain

import "fmt"

// Company is a client logo entry as served by /api/companies.
type Company struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	LogoURL string `json:"logoUrl" yaml:"logoUrl"`
	AltText string `json:"altText,omitempty" yaml:"altText,omitempty"`
	Website string `json:"website,omitempty" yaml:"website,omitempty"`
}

// Alt returns the accessible logo text, defaulting to "<name> logo".
func (c Company) Alt() string {
	if c.AltText != "" {
		return c.AltText
	}
	return fmt.Sprintf("%s logo", c.Name)
}
