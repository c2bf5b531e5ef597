package payroll

// UsageMeter reports how much data an entity consumed, in bits.
type UsageMeter interface {
	Measure(entity Entity) (float64, error)
}

// RecordedUsageMeter reads the usage already recorded on the entity itself.
type RecordedUsageMeter struct{}

func (RecordedUsageMeter) Measure(entity Entity) (float64, error) {
	return entity.DataUsageBits, nil
}
