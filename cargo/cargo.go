package cargo

// Cargo is anything that can be loaded into a container
type Cargo interface {
	Name() string
	Weight() int
}

// General is cargo without any handling requirements
type General struct {
	name   string
	weight int
}

// New creates general cargo
func New(name string, weight int) *General {
	return &General{name: name, weight: weight}
}

// Name returns the cargo name
func (c *General) Name() string { return c.name }

// Weight returns the cargo weight
func (c *General) Weight() int { return c.weight }

// Liquid is cargo that has to travel in a liquid container
type Liquid struct {
	General
	dangerous bool
}

// NewLiquid creates liquid cargo. Dangerous liquids may only fill half of a
// container.
func NewLiquid(name string, weight int, dangerous bool) *Liquid {
	return &Liquid{General: General{name: name, weight: weight}, dangerous: dangerous}
}

// IsDangerous reports whether the liquid is hazardous
func (c *Liquid) IsDangerous() bool { return c.dangerous }

// Cold is cargo that needs a refrigerated container set to at least its
// required temperature
type Cold struct {
	General
	tempNeeded float64
}

// NewCold creates refrigerated cargo
func NewCold(name string, weight int, tempNeeded float64) *Cold {
	return &Cold{General: General{name: name, weight: weight}, tempNeeded: tempNeeded}
}

// TempNeeded returns the storage temperature the cargo requires
func (c *Cold) TempNeeded() float64 { return c.tempNeeded }
