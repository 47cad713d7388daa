package validation

import (
	"strings"
	"testing"
)

func TestValidateStructAddNode(t *testing.T) {
	tests := []struct {
		name    string
		req     AddNodeRequest
		wantErr bool
	}{
		{"valid", AddNodeRequest{EquipmentType: "ball_mill", X: 100, Y: 50}, false},
		{"missing type", AddNodeRequest{X: 100}, true},
		{"type too long", AddNodeRequest{EquipmentType: strings.Repeat("a", 65)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateStructConnect(t *testing.T) {
	valid := ConnectRequest{
		SourceNodeID: "6ba7b810-9dad-41d1-80b4-00c04fd430c8",
		SourcePortID: "discharge",
		TargetNodeID: "6ba7b811-9dad-41d1-80b4-00c04fd430c8",
		TargetPortID: "feed",
	}
	if err := ValidateStruct(valid); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}

	badID := valid
	badID.SourceNodeID = "not-a-uuid"
	if err := ValidateStruct(badID); err == nil {
		t.Error("non-uuid node id accepted")
	}

	noPort := valid
	noPort.TargetPortID = ""
	if err := ValidateStruct(noPort); err == nil {
		t.Error("empty port id accepted")
	}
}

func TestValidateStructCompare(t *testing.T) {
	valid := CompareRequest{
		BaselineScenarioID: "sc-base",
		ScenarioID:         "sc-trial",
		ProjectID:          "proj-1",
		FlowsheetVersionID: "fv-1",
	}
	if err := ValidateStruct(valid); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}

	withOptions := valid
	withOptions.Sort = "percent_delta"
	withOptions.Filter = "only_worse"
	if err := ValidateStruct(withOptions); err != nil {
		t.Errorf("valid options rejected: %v", err)
	}

	badSort := valid
	badSort.Sort = "alphabetical"
	if err := ValidateStruct(badSort); err == nil {
		t.Error("unknown sort mode accepted")
	}

	badFilter := valid
	badFilter.Filter = "only_same"
	if err := ValidateStruct(badFilter); err == nil {
		t.Error("unknown filter accepted")
	}
}

func TestValidateStructNil(t *testing.T) {
	if err := ValidateStruct(nil); err == nil {
		t.Error("nil request accepted")
	}
}

func TestValidateStructCollectsAllErrors(t *testing.T) {
	err := ValidateStruct(ConnectRequest{})
	if err == nil {
		t.Fatal("empty request accepted")
	}
	msg := err.Error()
	for _, field := range []string{"SourceNodeID", "SourcePortID", "TargetNodeID", "TargetPortID"} {
		if !strings.Contains(msg, field) {
			t.Errorf("error message missing field %s: %s", field, msg)
		}
	}
}

func TestValidateMetricKey(t *testing.T) {
	tests := []struct {
		key     string
		wantErr bool
	}{
		{"throughput_tph", false},
		{"p80_product_um", false},
		{"x", false},
		{"", true},
		{"Throughput", true},
		{"80_p", true},
		{"metric-key", true},
		{"metric key", true},
		{strings.Repeat("a", 129), true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			err := ValidateMetricKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMetricKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
		})
	}
}
