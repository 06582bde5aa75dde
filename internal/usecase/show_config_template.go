package usecase

import (
	"context"

	"github.com/runoshun/guardkit/internal/domain"
)

// ShowConfigTemplateInput contains the input for the ShowConfigTemplate use case.
type ShowConfigTemplateInput struct{}

// ShowConfigTemplateOutput contains the rendered template.
type ShowConfigTemplateOutput struct {
	Template string
}

// ShowConfigTemplate renders the default configuration template.
type ShowConfigTemplate struct{}

// NewShowConfigTemplate creates a new ShowConfigTemplate use case.
func NewShowConfigTemplate() *ShowConfigTemplate {
	return &ShowConfigTemplate{}
}

// Execute renders the template.
func (uc *ShowConfigTemplate) Execute(_ context.Context, _ ShowConfigTemplateInput) (*ShowConfigTemplateOutput, error) {
	return &ShowConfigTemplateOutput{
		Template: domain.RenderConfigTemplate(domain.NewDefaultConfig()),
	}, nil
}
