package dom

// CharacterData is https://dom.spec.whatwg.org/#characterdata
type CharacterData struct {
	Data   string
	Length int
}

func newCharacterData(data string) *CharacterData {
	return &CharacterData{
		Data:   data,
		Length: len(data),
	}
}

// SetData replaces the data and keeps Length in sync.
func (c *CharacterData) SetData(data string) {
	c.Data = data
	c.Length = len(data)
}

// https://dom.spec.whatwg.org/#text
type Text struct {
	*CharacterData
}

// Comment is https://dom.spec.whatwg.org/#interface-comment
type Comment struct {
	*CharacterData
}

// Attr is https://dom.spec.whatwg.org/#attr
type Attr struct {
	Namespace    Namespace
	Prefix       string
	LocalName    string
	Name         string
	Value        string
	OwnerElement *Node
}

func NewAttr(name, value string, oe *Node) *Attr {
	return &Attr{
		LocalName:    name,
		Name:         name,
		Value:        value,
		OwnerElement: oe,
	}
}

// Document is https://dom.spec.whatwg.org/#interface-document
type Document struct {
	URL  string
	Mode string
	Type string
}

// DocumentType is https://dom.spec.whatwg.org/#documenttype
type DocumentType struct {
	Name     string
	PublicID string
	SystemID string
}
