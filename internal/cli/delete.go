package cli

import "fmt"

type DeleteCmd struct {
	ID string `arg:"" help:"Session ID."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	p, err := ctx.Planner()
	if err != nil {
		return err
	}

	removed, err := p.Delete(c.ID)
	if err != nil {
		return err
	}
	if !removed {
		// Benign no-op, not an error
		fmt.Printf("No session with ID %s\n", c.ID)
		return nil
	}

	fmt.Println("Session deleted")
	return nil
}
