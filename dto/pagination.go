package dto

// PageRequest is a 0-based page request, the list query's offset/limit source.
type PageRequest struct {
	Page int `json:"page" validate:"min=0"`
	Size int `json:"size" validate:"gt=0"`
}

// NewPageRequest clamps size to maxSize; bounds checks are left to validation.
func NewPageRequest(page, size, maxSize int) PageRequest {
	if maxSize > 0 && size > maxSize {
		size = maxSize
	}
	return PageRequest{Page: page, Size: size}
}

func (p PageRequest) Offset() int { return p.Page * p.Size }

func (p PageRequest) Limit() int { return p.Size }
