package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moodflow/moodflow/internal/store"
)

func init() {
	contactsCmd := &cobra.Command{
		Use:   "contacts",
		Short: "Personal support contacts",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a support contact",
		Run:   runContactsAdd,
	}
	addCmd.Flags().StringP("name", "n", "", "Contact name (required)")
	addCmd.Flags().StringP("phone", "p", "", "Phone number (required)")
	addCmd.Flags().String("relationship", "", "Relationship (friend, family, therapist...)")
	addCmd.Flags().String("available", "", "When they are reachable")
	addCmd.Flags().String("notes", "", "Anything worth remembering")
	addCmd.MarkFlagRequired("name")
	addCmd.MarkFlagRequired("phone")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts and favorite resources",
		Run:   runContactsList,
	}

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a contact",
		Args:  cobra.ExactArgs(1),
		Run:   runContactsRm,
	}

	favCmd := &cobra.Command{
		Use:   "fav <resource-id>",
		Short: "Toggle a crisis resource as favorite",
		Args:  cobra.ExactArgs(1),
		Run:   runContactsFav,
	}

	contactsCmd.AddCommand(addCmd, listCmd, rmCmd, favCmd)
	RootCmd.AddCommand(contactsCmd)
}

func runContactsAdd(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	phone, _ := cmd.Flags().GetString("phone")
	relationship, _ := cmd.Flags().GetString("relationship")
	available, _ := cmd.Flags().GetString("available")
	notes, _ := cmd.Flags().GetString("notes")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	c, err := s.SaveSupportContact(cmd.Context(), store.SupportContactParams{
		Name:         name,
		Relationship: relationship,
		Phone:        phone,
		Available:    available,
		Notes:        notes,
	})
	if err != nil {
		exitErr("contacts add", err)
	}

	b, _ := json.Marshal(c)
	fmt.Println(string(b))
}

func runContactsList(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	b, _ := json.MarshalIndent(s.SupportContacts(cmd.Context()), "", "  ")
	fmt.Println(string(b))
}

func runContactsRm(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.DeleteSupportContact(cmd.Context(), args[0]); err != nil {
		exitErr("contacts rm", err)
	}

	fmt.Printf(`{"ok":true,"id":%q}`+"\n", args[0])
}

func runContactsFav(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	favorites, err := s.ToggleFavoriteResource(cmd.Context(), args[0])
	if err != nil {
		exitErr("contacts fav", err)
	}

	b, _ := json.Marshal(favorites)
	fmt.Println(string(b))
}
