package profile

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/osse101/PlotPlanner_Go/configs/schemas"
	"github.com/osse101/PlotPlanner_Go/internal/catalog"
	"github.com/osse101/PlotPlanner_Go/internal/domain"
	"github.com/osse101/PlotPlanner_Go/internal/validation"
)

// Decoder parses exported profile files
type Decoder struct {
	schemaValidator validation.SchemaValidator
}

// NewDecoder creates a decoder backed by the embedded profile schema
func NewDecoder() *Decoder {
	return &Decoder{schemaValidator: validation.NewSchemaValidator(schemas.FS)}
}

// Decode accepts the browser planner's JSON export or the same document as
// YAML. The document is schema checked before it is decoded.
func (d *Decoder) Decode(raw []byte) (domain.ProfileData, error) {
	content := bytes.TrimSpace(raw)
	if len(content) == 0 {
		return domain.ProfileData{}, fmt.Errorf(ErrFmtDecodeProfile, domain.ErrInvalidProfileData, "empty document")
	}
	if content[0] != '{' {
		converted, err := catalog.YAMLToJSON(content)
		if err != nil {
			return domain.ProfileData{}, fmt.Errorf(ErrFmtDecodeProfile, domain.ErrInvalidProfileData, err)
		}
		content = converted
	}

	if err := d.schemaValidator.ValidateBytes(content, schemas.Profile); err != nil {
		return domain.ProfileData{}, fmt.Errorf(ErrFmtDecodeProfile, domain.ErrInvalidProfileData, err)
	}

	var data domain.ProfileData
	if err := json.Unmarshal(content, &data); err != nil {
		return domain.ProfileData{}, fmt.Errorf(ErrFmtDecodeProfile, domain.ErrInvalidProfileData, err)
	}
	data.Seeds = domain.CanonicalSeedCounts(data.Seeds)
	data.ExcludedSeeds = domain.CanonicalExclusions(data.ExcludedSeeds)
	return data, nil
}

// Encode renders profile data in the export format
func Encode(data domain.ProfileData) ([]byte, error) {
	return json.Marshal(data)
}
