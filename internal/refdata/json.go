package refdata

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/execmatch/internal/model"
	"github.com/sells-group/execmatch/internal/normalize"
)

// LoadCandidatesJSON reads system-extracted candidate records from a JSON
// array. The empty-name validity filter applies here the same as for
// references.
func LoadCandidatesJSON(path string) ([]model.EntityRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "refdata: read candidates")
	}

	var raw []model.EntityRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, eris.Wrap(err, "refdata: parse candidates")
	}

	records := raw[:0:0]
	skipped := 0
	for _, rec := range raw {
		if normalize.CanonicalName(rec.FullName) == "" {
			skipped++
			continue
		}
		records = append(records, rec)
	}

	if skipped > 0 {
		zap.L().Warn("refdata: skipped candidates with empty names",
			zap.String("path", path),
			zap.Int("skipped", skipped),
		)
	}

	return records, nil
}

// PageBundle is the attribution input for one scraped page: the raw text
// plus the contacts and entities the extractor located in it.
type PageBundle struct {
	CompanyURL string                 `json:"company_url,omitempty"`
	RawText    string                 `json:"raw_text"`
	Contacts   []model.LocatedContact `json:"contacts"`
	Entities   []model.LocatedEntity  `json:"entities"`
	Candidates []model.EntityRecord   `json:"candidates,omitempty"`
}

// LoadPageBundle reads a page bundle from a JSON file.
func LoadPageBundle(path string) (*PageBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "refdata: read page bundle")
	}

	var bundle PageBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, eris.Wrap(err, "refdata: parse page bundle")
	}
	return &bundle, nil
}
