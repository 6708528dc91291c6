package domain

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrDescriptionRequired = errors.New("business description is required")
	ErrIndustryRequired    = errors.New("industry is required")
	ErrNameRequired        = errors.New("brand name is required")
	ErrUnknownName         = errors.New("name was not among the generated candidates")
	ErrNameNotSelected     = errors.New("a brand name must be selected first")
	ErrNoLogoPrompt        = errors.New("no logo has been generated yet")
	ErrFontNotInCatalog    = errors.New("font is not part of the catalog")
	ErrProviderFailure     = errors.New("provider failure")
)
