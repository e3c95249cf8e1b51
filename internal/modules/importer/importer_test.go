package importer

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wandererhq/wanderer-core/internal/models"
)

func TestImportBatchesTolerateFailedBatch(t *testing.T) {
	rows := make([]models.SpotModel, 120)
	for i := range rows {
		rows[i] = models.SpotModel{Name: fmt.Sprintf("Spot %d", i)}
	}

	call := 0
	insert := func(batch interface{}) error {
		call++
		if call == 2 {
			return errors.New("foreign key violation")
		}
		return nil
	}

	report := importBatches(rows, 50, insert)
	assert.Equal(t, 70, report.SuccessCount)
	assert.Equal(t, 50, report.ErrorCount)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "rows 51-100")
	assert.Equal(t, 3, call, "all batches attempted despite the failure")
}

func TestImportBatchesAllHealthy(t *testing.T) {
	rows := make([]models.SpotModel, 75)
	insert := func(batch interface{}) error { return nil }

	report := importBatches(rows, 50, insert)
	assert.Equal(t, 75, report.SuccessCount)
	assert.Zero(t, report.ErrorCount)
	assert.Empty(t, report.Errors)
}

func TestImportUnknownTarget(t *testing.T) {
	svc := NewService(nil, nil)
	_, err := svc.Import(Target("mystery"), nil)
	assert.Error(t, err)
}

func TestParseThenMapSpots(t *testing.T) {
	input := strings.Join([]string{
		"name;municipality;category;rating;is_hidden_gem",
		"Cagsawa Ruins;Daraga;[\"History\",\"Nature\"];4.7;false",
		"Quitinday Hills;Camalig;[\"Nature\"];4.5;true",
	}, "\n")

	records, err := Parse(strings.NewReader(input), nil)
	require.NoError(t, err)

	spots := mapRecords(records, toSpot)
	require.Len(t, spots, 2)
	assert.Equal(t, "Cagsawa Ruins", spots[0].Name)
	assert.Equal(t, models.StringArray{"History", "Nature"}, spots[0].Category)
	assert.InDelta(t, 4.7, spots[0].Rating, 1e-9)
	assert.False(t, spots[0].IsHiddenGem)
	assert.True(t, spots[1].IsHiddenGem)
}
