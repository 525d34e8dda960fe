package components

const (
	CardHeight           = 6 // CardHeight is the fixed height of a project card, borders included
	cardDescriptionLines = 2 // description lines shown on a card
	listBorderOverhead   = 2 // top border + bottom border
	headerLines          = 1 // list title and count
	indicatorLines       = 2 // "▲ more above" + "▼ more below" rows
	listHorizontalFrame  = 4 // border + padding on both sides
	cardHorizontalFrame  = 2 // card border on both sides
)

// VisibleCards returns how many cards fit into a list of the given outer height.
func VisibleCards(height int) int {
	available := height - listBorderOverhead - headerLines - indicatorLines
	return max(available/CardHeight, 1)
}

// CardWidth returns the outer width of a card inside a list of the given outer width.
func CardWidth(listWidth int) int {
	return max(listWidth-listHorizontalFrame, cardHorizontalFrame+1)
}
