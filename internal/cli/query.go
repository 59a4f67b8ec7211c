package cli

import (
	"fmt"
	"strings"

	"github.com/heathj/gomount/wrapper"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type check struct {
	name string
	arg  string
	run  func(*wrapper.WrapperArray) (bool, error)
}

func newQueryCommand(a *app) *cobra.Command {
	var (
		sel                    string
		hasClass               string
		hasAttribute, hasStyle string
		is, contains           string
		empty                  bool
	)
	cmd := &cobra.Command{
		Use:   "query FILE",
		Short: "Check that every selected element satisfies the given conditions",
		Example: `  gomount query page.html --select li --has-class item
  gomount query page.html --select input --has-attribute type=text --empty`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var checks []check
			flags := cmd.Flags()
			if flags.Changed("has-class") {
				checks = append(checks, check{"hasClass", hasClass, func(w *wrapper.WrapperArray) (bool, error) {
					return w.HasClass(hasClass)
				}})
			}
			if flags.Changed("has-attribute") {
				name, value, err := splitPair("has-attribute", hasAttribute)
				if err != nil {
					return err
				}
				checks = append(checks, check{"hasAttribute", hasAttribute, func(w *wrapper.WrapperArray) (bool, error) {
					return w.HasAttribute(name, value)
				}})
			}
			if flags.Changed("has-style") {
				name, value, err := splitPair("has-style", hasStyle)
				if err != nil {
					return err
				}
				checks = append(checks, check{"hasStyle", hasStyle, func(w *wrapper.WrapperArray) (bool, error) {
					return w.HasStyle(name, value)
				}})
			}
			if flags.Changed("is") {
				checks = append(checks, check{"is", is, func(w *wrapper.WrapperArray) (bool, error) {
					return w.Is(wrapper.CSS(is))
				}})
			}
			if flags.Changed("contains") {
				checks = append(checks, check{"contains", contains, func(w *wrapper.WrapperArray) (bool, error) {
					return w.Contains(wrapper.CSS(contains))
				}})
			}
			if empty {
				checks = append(checks, check{"isEmpty", "", (*wrapper.WrapperArray).IsEmpty})
			}
			if len(checks) == 0 {
				return errors.New("no checks requested")
			}

			items, err := a.selectAll(args[0], sel)
			if err != nil {
				return err
			}
			return runChecks(cmd, items, checks)
		},
	}
	cmd.Flags().StringVarP(&sel, "select", "s", "", "CSS selector for the elements to check")
	cmd.Flags().StringVar(&hasClass, "has-class", "", "every element has these classes")
	cmd.Flags().StringVar(&hasAttribute, "has-attribute", "", "every element has attribute NAME=VALUE")
	cmd.Flags().StringVar(&hasStyle, "has-style", "", "every element has inline style NAME=VALUE")
	cmd.Flags().StringVar(&is, "is", "", "every element matches this selector")
	cmd.Flags().StringVar(&contains, "contains", "", "every element contains a match for this selector")
	cmd.Flags().BoolVar(&empty, "empty", false, "every element has no children")
	_ = cmd.MarkFlagRequired("select")
	return cmd
}

// runChecks prints one line per check. Checks keep running after a false
// answer but stop at the first error.
func runChecks(cmd *cobra.Command, items *wrapper.WrapperArray, checks []check) error {
	failed := false
	for _, c := range checks {
		ok, err := c.run(items)
		if err != nil {
			return errors.Wrapf(err, "%s(%s)", c.name, c.arg)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s(%s): %t\n", c.name, c.arg, ok)
		failed = failed || !ok
	}
	if failed {
		return ErrCheckFailed
	}
	return nil
}

func splitPair(flag, s string) (string, string, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return "", "", errors.Errorf("--%s must be NAME=VALUE, got %q", flag, s)
	}
	return strings.TrimSpace(name), value, nil
}
