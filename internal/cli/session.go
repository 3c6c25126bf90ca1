package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"depthjournal/internal/ui"
)

var signinCmd = &cobra.Command{
	Use:   "signin <email>",
	Short: "Sign in and make this the current journaling session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closeDB, err := openEngine()
		if err != nil {
			return err
		}
		defer closeDB()

		u, err := eng.SignIn(args[0])
		if err != nil {
			return err
		}
		fmt.Println(ui.StyleSuccess.Render("signed in as " + u.Email))
		fmt.Println(ui.RenderKeyValue("user id", u.ID))
		return nil
	},
}

var signoutCmd = &cobra.Command{
	Use:   "signout",
	Short: "Clear the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closeDB, err := openEngine()
		if err != nil {
			return err
		}
		defer closeDB()

		if err := eng.SignOut(); err != nil {
			return err
		}
		fmt.Println("signed out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closeDB, err := openEngine()
		if err != nil {
			return err
		}
		defer closeDB()

		u, err := eng.CurrentUser()
		if err != nil {
			return err
		}
		if u == nil {
			fmt.Println(ui.StyleMuted.Render("nobody is signed in"))
			return nil
		}
		fmt.Println(ui.RenderKeyValue("email", u.Email))
		fmt.Println(ui.RenderKeyValue("user id", u.ID))
		return nil
	},
}
