package types

// Product is one line of the product list for a job.
type Product struct {
	// Item uniquely identifies the product within a job
	Item string `json:"item"`

	// Room is the room label
	Room string `json:"room,omitempty"`

	// Description is the free-text product description
	Description string `json:"description"`

	// Qty is the product quantity (at least 1)
	Qty int `json:"qty"`

	// WidthMM, HeightMM and DepthMM are the product dimensions in millimeters
	WidthMM  float64 `json:"width_mm"`
	HeightMM float64 `json:"height_mm"`
	DepthMM  float64 `json:"depth_mm"`
}

// AreaM2 returns the face area of the product in square meters.
func (p Product) AreaM2() float64 {
	return p.WidthMM * p.HeightMM / 1_000_000.0
}

// VolumeM3 returns the cargo volume of the product in cubic meters,
// multiplied by its quantity. Negative dimensions count as zero.
func (p Product) VolumeM3() float64 {
	w := maxf(p.WidthMM, 0) / 1000.0
	h := maxf(p.HeightMM, 0) / 1000.0
	d := maxf(p.DepthMM, 0) / 1000.0
	return w * h * d * float64(p.Quantity())
}

// Quantity returns the product quantity floored at 1.
func (p Product) Quantity() int {
	if p.Qty < 1 {
		return 1
	}
	return p.Qty
}

// ProductList holds the products of a job.
type ProductList struct {
	Products []Product `json:"products"`
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
