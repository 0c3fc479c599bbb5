package cli

import "fmt"

type CoursesCmd struct{}

func (c *CoursesCmd) Run(ctx *Context) error {
	p, err := ctx.Planner()
	if err != nil {
		return err
	}

	names := p.CourseNames()
	if len(names) == 0 {
		fmt.Println("No courses yet")
		return nil
	}

	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
