package garden

import (
	"log/slog"
)

type RoseGarden struct {
	logger *slog.Logger
}

func NewRoseGarden(logger *slog.Logger) *RoseGarden {
	if logger == nil {
		logger = slog.Default()
	}
	return &RoseGarden{logger: logger}
}

func (g *RoseGarden) Prepare() {
	Prepare(g)
}

func (g *RoseGarden) PrepareSoil() {
	g.logger.Info("prepare the soil for the rose garden")
}

func (g *RoseGarden) PlantSeeds() {
	g.logger.Info("plant seeds for the rose garden")
}

func (g *RoseGarden) WaterPlants() {
	g.logger.Info("water the rose garden")
}
