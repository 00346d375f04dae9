package dataservice

import (
	"context"

	"github.com/atlasgrow/atlas-go/internal/errors"
	"github.com/atlasgrow/atlas-go/internal/model"
)

// Dataset names the endpoints exposed by the data service.
type Dataset string

const (
	DatasetUnitParameters Dataset = "unit-parameters"
	DatasetSunData        Dataset = "sun-data"
	DatasetMeasurements   Dataset = "unit-measurements"
	DatasetPlantGrowth    Dataset = "plant-growth"
	DatasetPlantHarvest   Dataset = "plant-harvest"
)

// Datasets lists every dataset the loader fetches at startup.
var Datasets = []Dataset{
	DatasetUnitParameters,
	DatasetSunData,
	DatasetMeasurements,
	DatasetPlantGrowth,
	DatasetPlantHarvest,
}

// FetchUnitParameters returns the growing unit's static configuration. The
// dataset is a single-row table.
func (c *Client) FetchUnitParameters(ctx context.Context) (*model.UnitParameters, error) {
	body, err := c.fetchDataset(ctx, DatasetUnitParameters)
	if err != nil {
		return nil, err
	}
	rows, err := decodeRows[model.UnitParameters](body, DatasetUnitParameters)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.Newf("unit parameters dataset is empty").
			Component("dataservice").
			Category(errors.CategoryValidation).
			Context("dataset", string(DatasetUnitParameters)).
			Build()
	}
	return &rows[0], nil
}

// FetchSunData returns the daily daylight records, ordered as delivered.
func (c *Client) FetchSunData(ctx context.Context) ([]model.SunRecord, error) {
	body, err := c.fetchDataset(ctx, DatasetSunData)
	if err != nil {
		return nil, err
	}
	return decodeRows[model.SunRecord](body, DatasetSunData)
}

// FetchMeasurements returns the raw sensor readings, including rows with
// missing core fields.
func (c *Client) FetchMeasurements(ctx context.Context) ([]model.MeasurementRecord, error) {
	body, err := c.fetchDataset(ctx, DatasetMeasurements)
	if err != nil {
		return nil, err
	}
	return decodeRows[model.MeasurementRecord](body, DatasetMeasurements)
}

// FetchPlantGrowth returns the plant growth observations.
func (c *Client) FetchPlantGrowth(ctx context.Context) ([]model.GrowthRecord, error) {
	body, err := c.fetchDataset(ctx, DatasetPlantGrowth)
	if err != nil {
		return nil, err
	}
	return decodeRows[model.GrowthRecord](body, DatasetPlantGrowth)
}

// FetchPlantHarvest returns the harvest outcome observations.
func (c *Client) FetchPlantHarvest(ctx context.Context) ([]model.HarvestRecord, error) {
	body, err := c.fetchDataset(ctx, DatasetPlantHarvest)
	if err != nil {
		return nil, err
	}
	return decodeRows[model.HarvestRecord](body, DatasetPlantHarvest)
}
