package club

import "fmt"

// Club is a football club in the world. Exactly one club per career is
// controlled by the user; the rest act as AI bidders.
type Club struct {
	ID             string
	Name           string
	League         string
	Country        string
	Overall        int
	TransferBudget int64
}

func (c Club) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("club id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("club name is required")
	}
	if c.League == "" {
		return fmt.Errorf("club league is required")
	}
	if c.Overall < 0 || c.Overall > 99 {
		return fmt.Errorf("club overall out of range: %d", c.Overall)
	}

	return nil
}
