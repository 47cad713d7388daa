// Package validation validates API request payloads and configuration
// before they reach the core model.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Validation constants
	MaxLabelLength = 80
	MaxParameters  = 100
	MaxGraphNodes  = 500
	MaxGraphEdges  = 1000

	metricKeyPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

func init() {
	validate = validator.New()
}

// AddNodeRequest is a request to add an equipment node to a flowsheet.
type AddNodeRequest struct {
	EquipmentType string  `json:"equipmentType" validate:"required,min=1,max=64"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
}

// ConnectRequest is a request to connect two node ports.
type ConnectRequest struct {
	SourceNodeID string `json:"sourceNodeId" validate:"required,uuid4"`
	SourcePortID string `json:"sourcePortId" validate:"required,min=1,max=64"`
	TargetNodeID string `json:"targetNodeId" validate:"required,uuid4"`
	TargetPortID string `json:"targetPortId" validate:"required,min=1,max=64"`
}

// SetParameterRequest is a request to edit one node parameter.
type SetParameterRequest struct {
	NodeID string `json:"nodeId" validate:"required,uuid4"`
	Name   string `json:"name" validate:"required,min=1,max=64"`
	Value  any    `json:"value" validate:"required"`
}

// SaveGoalsRequest is a request to persist goal overrides for a scope.
type SaveGoalsRequest struct {
	ProjectID          string         `json:"projectId" validate:"required,min=1,max=128"`
	FlowsheetVersionID string         `json:"flowsheetVersionId" validate:"required,min=1,max=128"`
	Goals              map[string]any `json:"goals" validate:"required"`
}

// CompareRequest is a request to compare a scenario against a baseline.
type CompareRequest struct {
	BaselineScenarioID string `json:"baselineScenarioId" validate:"required,min=1,max=128"`
	ScenarioID         string `json:"scenarioId" validate:"required,min=1,max=128"`
	ProjectID          string `json:"projectId" validate:"required,min=1,max=128"`
	FlowsheetVersionID string `json:"flowsheetVersionId" validate:"required,min=1,max=128"`
	Sort               string `json:"sort" validate:"omitempty,oneof=declaration percent_delta"`
	Filter             string `json:"filter" validate:"omitempty,oneof=all only_better only_worse"`
	OnlyChanged        bool   `json:"onlyChanged"`
}

// ValidateStruct validates any request struct against its tags.
func ValidateStruct(req any) error {
	if req == nil {
		return errors.New("request cannot be nil")
	}
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ValidateMetricKey checks a metric key used in goal override maps.
func ValidateMetricKey(key string) error {
	if key == "" {
		return errors.New("metric key cannot be empty")
	}
	if len(key) > 128 {
		return fmt.Errorf("metric key exceeds maximum length of 128 characters")
	}
	if !metricKeyPattern.MatchString(key) {
		return fmt.Errorf("metric key %q contains invalid characters (lowercase alphanumeric and underscore only)", key)
	}
	return nil
}

// formatValidationError converts validator errors into a single readable
// message.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: failed %q validation", fe.Field(), fe.Tag()))
	}
	return errors.New(strings.Join(parts, "; "))
}
