package fields

type Field struct {
	K string
	V interface{}
}

type Fields []Field
