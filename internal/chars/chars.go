package chars

// Char is a single positioned character as reported by the PDF content
// stream. Coordinates use a top-left origin: Top grows downward so that
// smaller values are nearer the top of the page.
type Char struct {
	Text  string
	X0    float64 // left offset
	Width float64
	Top   float64 // vertical offset from the top edge
	Font  string
	Size  float64 // font size in points
	Page  int     // 1-based page number
}

// Page holds the ordered characters of one document page.
type Page struct {
	Number int
	Chars  []Char
}
