package render

// Shape is the overall page shape of a rendered layout.
type Shape string

// Layout shapes.
const (
	ShapeSingleColumn Shape = "single-column"
	ShapeTwoColumn    Shape = "two-column"
)

// Role tags a text block with the visual role it plays, so the writer can
// pick the right style attribute for it.
type Role string

// Text block roles.
const (
	RoleName    Role = "name"
	RoleTitle   Role = "title"
	RoleSummary Role = "summary"
	RoleDetail  Role = "detail"
	RoleAside   Role = "aside"
)

// Layout is the rendered form of a document under one template: a header
// plus one or two columns of sections. It carries the template's style
// table so serialization needs no further lookups.
type Layout struct {
	Template Template
	Shape    Shape
	Style    Style
	Header   []Block
	Columns  []Column
}

// Column is a vertical run of sections. Sidebar marks the narrow column of
// a two-column shape.
type Column struct {
	Sidebar  bool
	Sections []Section
}

// Section is a titled group of blocks. Builders never emit a section with
// no blocks; empty backing data omits the section entirely.
type Section struct {
	Title  string
	Blocks []Block
}

// Block is one node of the layout tree.
type Block interface {
	isBlock()
}

// TextBlock is a single run of text in a given role.
type TextBlock struct {
	Role Role
	Text string
}

// ContactItem is one labeled contact line.
type ContactItem struct {
	Label string
	Value string
}

// ContactBlock lists contact details, optionally labeled.
type ContactBlock struct {
	Items []ContactItem
}

// EntryBlock is one dated entry (a position or a degree): a title line, a
// subtitle, an aside (usually the date range), bullet items parsed from the
// description, and optional free-text detail lines.
type EntryBlock struct {
	Title       string
	Subtitle    string
	Aside       string
	Bullets     []string
	Detail      string
	DetailLines []DetailLine
}

// DetailLine is one line of entry detail; Heading marks lines styled as
// sub-headings rather than list items.
type DetailLine struct {
	Text    string
	Heading bool
}

// ListBlock is a flat list of items, rendered as badges or bullets.
type ListBlock struct {
	Items  []string
	Badges bool
}

// SkillRating is a named skill with its 1-5 proficiency.
type SkillRating struct {
	Name  string
	Level int
}

// RatingBlock lists skills with star ratings.
type RatingBlock struct {
	Items []SkillRating
}

func (TextBlock) isBlock()    {}
func (ContactBlock) isBlock() {}
func (EntryBlock) isBlock()   {}
func (ListBlock) isBlock()    {}
func (RatingBlock) isBlock()  {}
