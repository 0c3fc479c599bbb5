package cli

import "fmt"

type SampleCmd struct{}

func (c *SampleCmd) Run(ctx *Context) error {
	p, err := ctx.Planner()
	if err != nil {
		return err
	}

	seeded, err := p.LoadSample()
	if err != nil {
		return err
	}
	if !seeded {
		fmt.Println("Store is not empty or sample data was already loaded; nothing to do")
		return nil
	}

	fmt.Printf("Loaded %d sample sessions\n", len(p.Sessions()))
	return nil
}
