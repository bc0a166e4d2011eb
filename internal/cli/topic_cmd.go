package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newTopicCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topic",
		Short: "Manage topics",
	}

	cmd.AddCommand(
		newTopicAddCmd(app),
		newTopicRenameCmd(app),
		newTopicRemoveCmd(app),
		newTopicCollapseCmd(app),
	)

	return cmd
}

func newTopicAddCmd(app *App) *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "add FILE NAME",
		Short: "Add a topic",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(app, args[0])
			if err != nil {
				return err
			}
			topic := s.ctrl.AddTopic(args[1], color)
			if err := s.save(context.Background()); err != nil {
				return err
			}
			fmt.Printf("Added topic %s [%s]\n", topic.Name, topic.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "Topic color (#RRGGBB, default: palette cycle)")

	return cmd
}

func newTopicRenameCmd(app *App) *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "rename FILE TOPIC NAME",
		Short: "Rename a topic or change its color",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(app, args[0])
			if err != nil {
				return err
			}
			topicID, err := resolveTopicID(s.doc, args[1])
			if err != nil {
				return err
			}
			topic := s.doc.GetTopic(topicID).Clone()
			topic.Name = args[2]
			if color != "" {
				topic.Color = color
			}
			s.ctrl.UpdateTopic(topic)
			if err := s.save(context.Background()); err != nil {
				return err
			}
			fmt.Printf("Updated topic %s\n", topic.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "New topic color (#RRGGBB)")

	return cmd
}

func newTopicRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove FILE TOPIC",
		Short: "Remove a topic and everything on its rows",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(app, args[0])
			if err != nil {
				return err
			}
			topicID, err := resolveTopicID(s.doc, args[1])
			if err != nil {
				return err
			}
			if !s.ctrl.RemoveTopic(topicID) {
				return fmt.Errorf("topic not found: %q", args[1])
			}
			if err := s.save(context.Background()); err != nil {
				return err
			}
			fmt.Println("Removed topic.")
			return nil
		},
	}
}

func newTopicCollapseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "collapse FILE TOPIC",
		Short: "Toggle a topic's collapsed state",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(app, args[0])
			if err != nil {
				return err
			}
			topicID, err := resolveTopicID(s.doc, args[1])
			if err != nil {
				return err
			}
			s.ctrl.ToggleTopicCollapsed(topicID)
			if err := s.save(context.Background()); err != nil {
				return err
			}
			topic := s.doc.GetTopic(topicID)
			state := "expanded"
			if topic.Collapsed {
				state = "collapsed"
			}
			fmt.Printf("Topic %s is now %s.\n", topic.Name, state)
			return nil
		},
	}
}

func newDeliverableCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deliverable",
		Short: "Manage deliverable rows",
	}

	cmd.AddCommand(
		newDeliverableAddCmd(app),
		newDeliverableMoveCmd(app),
		newDeliverableRemoveCmd(app),
	)

	return cmd
}

func newDeliverableAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add FILE TOPIC NAME",
		Short: "Add a deliverable row to a topic",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(app, args[0])
			if err != nil {
				return err
			}
			topicID, err := resolveTopicID(s.doc, args[1])
			if err != nil {
				return err
			}
			del := s.ctrl.AddDeliverable(topicID, args[2])
			if del == nil {
				return fmt.Errorf("topic not found: %q", args[1])
			}
			if err := s.save(context.Background()); err != nil {
				return err
			}
			fmt.Printf("Added deliverable %s [%s]\n", del.Name, del.ID[:8])
			return nil
		},
	}
}

func newDeliverableMoveCmd(app *App) *cobra.Command {
	var up, down bool

	cmd := &cobra.Command{
		Use:   "move FILE ROW",
		Short: "Move a deliverable up or down (crossing topic boundaries)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if up == down {
				return fmt.Errorf("exactly one of --up or --down is required")
			}
			s, err := openSession(app, args[0])
			if err != nil {
				return err
			}
			rowID, err := resolveRowID(s.doc, args[1])
			if err != nil {
				return err
			}
			direction := 1
			if up {
				direction = -1
			}
			if !s.ctrl.MoveDeliverable(rowID, direction) {
				return fmt.Errorf("cannot move deliverable %q", args[1])
			}
			if err := s.save(context.Background()); err != nil {
				return err
			}
			fmt.Println("Moved deliverable.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&up, "up", false, "Move one row up")
	cmd.Flags().BoolVar(&down, "down", false, "Move one row down")

	return cmd
}

func newDeliverableRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove FILE ROW",
		Short: "Remove a deliverable row and everything on it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(app, args[0])
			if err != nil {
				return err
			}
			rowID, err := resolveRowID(s.doc, args[1])
			if err != nil {
				return err
			}
			if !s.ctrl.RemoveDeliverable(rowID) {
				return fmt.Errorf("deliverable not found: %q", args[1])
			}
			if err := s.save(context.Background()); err != nil {
				return err
			}
			fmt.Println("Removed deliverable.")
			return nil
		},
	}
}
