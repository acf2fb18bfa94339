package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/roster/pkg/geometry"
	"github.com/mesh-intelligence/roster/pkg/numeric"
	"github.com/mesh-intelligence/roster/pkg/process"
	"github.com/mesh-intelligence/roster/pkg/textutil"
	"github.com/mesh-intelligence/roster/pkg/types"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through the repository and helpers in one session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := a.repository()
			if err != nil {
				return err
			}
			a.logger.Info("running demo", zap.String("backend", a.cfg.Backend))
			return runDemo(cmd.OutOrStdout(), repo)
		},
	}
}

// runDemo exercises every repository operation and helper in sequence.
// Expected failures (NotFound, InvalidInput) are reported, not returned.
func runDemo(w io.Writer, repo types.UserRepository) error {
	users, err := repo.List()
	if err != nil {
		return repoError(err)
	}
	fmt.Fprintf(w, "Users: %d\n", len(users))
	for _, u := range users {
		fmt.Fprintf(w, "  %d\t%s\t%s\n", u.ID, u.Name, u.Email)
	}

	created, err := repo.Create("Charlie Brown", "charlie@example.com")
	if err != nil {
		return repoError(err)
	}
	fmt.Fprintf(w, "Created user: %d %s\n", created.ID, created.Name)

	updated, err := repo.Update(created.ID, types.UserPatch{Email: types.StringPtr("chuck@example.com")})
	if err != nil {
		return repoError(err)
	}
	fmt.Fprintf(w, "Updated user: %d %s\n", updated.ID, updated.Email)

	if got, ok, err := repo.Get(created.ID); err != nil {
		return repoError(err)
	} else if ok {
		fmt.Fprintf(w, "Fetched user: %d %s <%s>\n", got.ID, got.Name, got.Email)
	}

	deleted, err := repo.Delete(created.ID)
	if err != nil {
		return repoError(err)
	}
	fmt.Fprintf(w, "Deleted user: %d\n", deleted.ID)

	if _, err := repo.Delete(created.ID); err != nil {
		if !errors.Is(err, types.ErrNotFound) {
			return repoError(err)
		}
		fmt.Fprintf(w, "Delete again: %s\n", types.Code(err))
	}

	fmt.Fprintf(w, "Sum: %d\n", numeric.Sum(10, 20))
	fmt.Fprintf(w, "Email valid: %t\n", textutil.IsPlausibleAddress("test@example.com"))
	fmt.Fprintln(w, textutil.FormatGreeting(created.Name, "welcome"))

	processed, err := process.ProcessBatch(process.Uppercase{}, []string{"item1", "item2", "item3"})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Processed data: %v\n", processed)
	if _, err := process.ProcessBatch(process.Uppercase{}, nil); err != nil {
		fmt.Fprintf(w, "Empty batch: %s\n", types.Code(err))
	}

	fmt.Fprintf(w, "Upper: %s\n", process.ProcessWith(process.Uppercase{}, "hello world"))
	fmt.Fprintf(w, "Lower: %s\n", process.ProcessWith(process.Lowercase{}, "HELLO WORLD"))
	fmt.Fprintf(w, "Reverse: %s\n", textutil.Reverse("hello"))
	fmt.Fprintf(w, "Words: %d\n", textutil.CountWords("hello   world  rust"))

	if q, err := numeric.SafeDivide(10, 2); err == nil {
		fmt.Fprintf(w, "Divide: %g\n", q)
	}
	if _, err := numeric.SafeDivide(10, 0); err != nil {
		fmt.Fprintf(w, "Divide by zero: %s\n", types.Code(err))
	}

	fmt.Fprintf(w, "Distance: %g\n", geometry.Distance(geometry.Origin, geometry.NewPoint(3, 4)))
	for _, n := range []int{0, 5, 50, 500, -1} {
		fmt.Fprintf(w, "Classify %d: %s\n", n, numeric.Classify(n))
	}
	return nil
}
