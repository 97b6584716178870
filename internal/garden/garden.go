package garden

// Garden supplies the steps of the garden preparation
type Garden interface {
	PrepareSoil()
	PlantSeeds()
	WaterPlants()
}

// Prepare runs the steps of the garden in the fixed order: soil, seeds, water
func Prepare(g Garden) {
	g.PrepareSoil()
	g.PlantSeeds()
	g.WaterPlants()
}
