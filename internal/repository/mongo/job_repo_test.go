package mongo

import (
	"testing"
	"time"

	"job-board-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.JobFilter
		want   bson.M
	}{
		{"no filter matches everything", domain.JobFilter{}, bson.M{}},
		{"type is exact", domain.JobFilter{Type: "Contract"}, bson.M{"type": "Contract"}},
		{
			"location is case-insensitive substring",
			domain.JobFilter{Location: "remo"},
			bson.M{"location": bson.M{"$regex": "remo", "$options": "i"}},
		},
		{
			"tag metacharacters are quoted",
			domain.JobFilter{Tag: "c++"},
			bson.M{"tags": bson.M{"$regex": `c\+\+`, "$options": "i"}},
		},
		{
			"all three combine",
			domain.JobFilter{Type: "Part Time", Location: "Berlin", Tag: "go"},
			bson.M{
				"type":     "Part Time",
				"location": bson.M{"$regex": "Berlin", "$options": "i"},
				"tags":     bson.M{"$regex": "go", "$options": "i"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildFilter(tt.filter))
		})
	}
}

func TestDocumentRoundTripKeepsTagsNonNil(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	job := &domain.Job{Title: "SRE", Type: domain.JobTypeContract, CreatedAt: created}

	doc := toDocument(job)
	assert.NotNil(t, doc.Tags)

	doc.ID = primitive.NewObjectID()
	doc.Tags = nil
	got := doc.toDomain()

	assert.Equal(t, doc.ID.Hex(), got.ID)
	assert.Equal(t, []string{}, got.Tags)
	assert.Equal(t, domain.JobTypeContract, got.Type)
	assert.Equal(t, created, got.CreatedAt)
}
