package source

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"

	"github.com/amishk599/careernav/internal/model"
)

//go:embed snapshot.schema.json
var snapshotSchemaRaw []byte

// snapshotSchema is compiled once; gojsonschema schemas are safe for reuse.
var snapshotSchema = func() *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(snapshotSchemaRaw))
	if err != nil {
		panic(fmt.Sprintf("compile snapshot schema: %v", err))
	}
	return s
}()

// schemaDocument returns the schema as a generic map, for APIs that take the
// schema inline (structured outputs).
func schemaDocument() map[string]any {
	var doc map[string]any
	if err := json.Unmarshal(snapshotSchemaRaw, &doc); err != nil {
		panic(fmt.Sprintf("decode snapshot schema: %v", err))
	}
	delete(doc, "$schema")
	return doc
}

// decodeSnapshot validates a JSON payload against the snapshot schema and
// decodes it. Schema violations come back as *model.SchemaError.
func decodeSnapshot(payload []byte) (*model.Snapshot, error) {
	result, err := snapshotSchema.Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return nil, &model.SchemaError{Issues: []string{err.Error()}}
	}
	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			issues = append(issues, e.String())
		}
		return nil, &model.SchemaError{Issues: issues}
	}

	var snap model.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	normalize(&snap, time.Now())
	return &snap, nil
}

// normalize fills ids the engine left out and clamps numeric fields to the
// ranges the dashboard draws.
func normalize(snap *model.Snapshot, now time.Time) {
	for i := range snap.JobRecommendations {
		j := &snap.JobRecommendations[i]
		if j.ID == "" {
			j.ID = uuid.NewString()
		}
		j.MatchPercentage = max(0, min(j.MatchPercentage, 100))
	}
	for i := range snap.SkillGaps {
		for k := range snap.SkillGaps[i].MissingSkills {
			ms := &snap.SkillGaps[i].MissingSkills[k]
			ms.Importance = max(1, min(ms.Importance, 10))
		}
	}
	for i := range snap.Certifications {
		c := &snap.Certifications[i]
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
	}
	if snap.FetchedAt.IsZero() {
		snap.FetchedAt = now
	}
}
