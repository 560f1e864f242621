package facts

type Fact uint8

const (
	// maximumFactValue is the value of the highest currently known Fact.
	maximumFactValue = 3

	// None is the default value for Fact.
	// Getting a Fact of type None means there are no facts for the given key.
	None Fact = 0

	// Struct is a Fact that represents a definition whose underlying type is a struct.
	Struct Fact = 1

	// Interface is a Fact that represents an interface definition.
	Interface Fact = 2

	// Named is a Fact that represents any other named type, such as `type Status int`.
	Named Fact = 3
)

func (f Fact) String() string {
	switch f {
	case None:
		return "None"
	case Struct:
		return "Struct"
	case Interface:
		return "Interface"
	case Named:
		return "Named"
	default:
		return "Unknown"
	}
}
