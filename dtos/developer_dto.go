package dtos

type DeveloperDTO struct {
	DeveloperID      int64   `json:"developer_id" yaml:"developer_id"`
	DeveloperName    string  `json:"developer_name" yaml:"developer_name"`
	DeveloperEmail   *string `json:"developer_email" yaml:"developer_email"`
	DeveloperWebsite *string `json:"developer_website" yaml:"developer_website"`
}

type DeveloperCreateRequest struct {
	DeveloperName    string  `json:"developer_name" yaml:"developer_name" validate:"notblank,max=255"`
	DeveloperEmail   *string `json:"developer_email" yaml:"developer_email" validate:"omitempty,email,max=255"`
	DeveloperWebsite *string `json:"developer_website" yaml:"developer_website" validate:"omitempty,url,max=500"`
}

type DeveloperUpdateRequest = DeveloperCreateRequest
