package garden

import (
	"log/slog"
)

type VegetableGarden struct {
	logger *slog.Logger
}

func NewVegetableGarden(logger *slog.Logger) *VegetableGarden {
	if logger == nil {
		logger = slog.Default()
	}
	return &VegetableGarden{logger: logger}
}

func (g *VegetableGarden) Prepare() {
	Prepare(g)
}

func (g *VegetableGarden) PrepareSoil() {
	g.logger.Info("dig and compost the vegetable beds")
}

func (g *VegetableGarden) PlantSeeds() {
	g.logger.Info("sow carrots, beans and lettuce")
}

func (g *VegetableGarden) WaterPlants() {
	g.logger.Info("water the vegetable beds")
}
