package facts

import "github.com/cockroachdb/errors"

// ErrFactExists is returned by AddFact when the name is already known.
var ErrFactExists = errors.New("fact already exists")

type Keeper map[string]Fact

func NewKeeper() Keeper {
	return make(Keeper)
}

func (fm Keeper) AddFact(entry Entry) error {
	if entry.Fact == None {
		return errors.Newf("invalid fact kind: %s", entry.Fact.String())
	}
	if entry.Fact > maximumFactValue {
		return errors.Newf("unknown fact: %d", entry.Fact)
	}
	if entry.Name == "" {
		return errors.New("empty fact name")
	}

	if _, ok := fm[entry.Name]; ok {
		return errors.Wrapf(ErrFactExists, "%s", entry.Name)
	}

	fm[entry.Name] = entry.Fact
	return nil
}

func (fm Keeper) GetFact(name string) Fact {
	return fm[name]
}
