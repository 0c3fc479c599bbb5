package cli

import "fmt"

type ClearCmd struct {
	Force bool `short:"f" help:"Skip the confirmation prompt."`
}

func (c *ClearCmd) Run(ctx *Context) error {
	if !c.Force {
		fmt.Print("This removes every session and cannot be undone. Continue? [y/N] ")
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted")
			return nil
		}
	}

	p, err := ctx.Planner()
	if err != nil {
		return err
	}

	if err := p.Clear(); err != nil {
		return err
	}

	fmt.Println("All sessions cleared")
	return nil
}
