package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jthomassen/roadline/internal/cli/formatter"
	"github.com/jthomassen/roadline/internal/controller"
	"github.com/jthomassen/roadline/internal/domain"
)

func newObjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "object",
		Short: "Manage canvas objects",
	}

	cmd.AddCommand(
		newObjectListCmd(app),
		newObjectAddCmd(app),
		newObjectUpdateCmd(app),
		newObjectRemoveCmd(app),
		newObjectDuplicateCmd(app),
		newObjectReorderCmd(app),
		newObjectLinkCmd(app),
		newObjectConnectCmd(app),
	)

	return cmd
}

func newObjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list FILE",
		Short: "List canvas objects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(app, args[0])
			if err != nil {
				return err
			}
			if s.doc.ObjectCount() == 0 {
				fmt.Println("No objects yet.")
				return nil
			}
			fmt.Print(formatter.FormatObjectList(s.doc))
			return nil
		},
	}
}

func newObjectAddCmd(app *App) *cobra.Command {
	var kindStr, rowStr, text, color string
	var startWeek, endWeek int
	var x, y, width, height float64

	cmd := &cobra.Command{
		Use:   "add FILE",
		Short: "Add a box, milestone, deadline, arrow or textbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := domain.Kind(kindStr)
			if !domain.ValidKinds[kind] || kind == domain.KindLink || kind == domain.KindConnector {
				return fmt.Errorf("invalid kind %q (use box, milestone, deadline, arrow or textbox; links and connectors have their own commands)", kindStr)
			}

			s, err := openSession(app, args[0])
			if err != nil {
				return err
			}

			var obj *domain.CanvasObject
			if kind == domain.KindTextbox {
				obj = s.ctrl.MakeTextbox(x, y, width, height)
			} else {
				rowID, err := resolveRowID(s.doc, rowStr)
				if err != nil {
					return err
				}
				if rowID == domain.CanvasRowID {
					return fmt.Errorf("%s objects need a topic or deliverable row", kind)
				}
				if endWeek == 0 {
					endWeek = startWeek
				}
				obj = s.ctrl.MakeDefaultObject(kind, rowID, startWeek, endWeek, color)
			}
			if text != "" {
				obj.Text = text
			}

			s.ctrl.AddObject(obj, fmt.Sprintf("Add %s", kind))
			if err := s.save(context.Background()); err != nil {
				return err
			}
			fmt.Printf("Added %s [%s]\n", kind, obj.ID[:8])
			return nil
		},
		Args: cobra.ExactArgs(1),
	}

	cmd.Flags().StringVar(&kindStr, "kind", "box", "Object kind")
	cmd.Flags().StringVar(&rowStr, "row", "", "Row (topic or topic/deliverable name, id, or prefix)")
	cmd.Flags().StringVar(&text, "text", "", "Label text")
	cmd.Flags().StringVar(&color, "color", "", "Color (#RRGGBB)")
	cmd.Flags().IntVar(&startWeek, "start", 1, "Start week")
	cmd.Flags().IntVar(&endWeek, "end", 0, "End week (default: start week)")
	cmd.Flags().Float64Var(&x, "x", 0, "Textbox x position")
	cmd.Flags().Float64Var(&y, "y", 0, "Textbox y position")
	cmd.Flags().Float64Var(&width, "width", 0, "Textbox width")
	cmd.Flags().Float64Var(&height, "height", 0, "Textbox height")

	return cmd
}

func newObjectUpdateCmd(app *App) *cobra.Command {
	var text, color, rowStr string
	var startWeek, endWeek, size int

	cmd := &cobra.Command{
		Use:   "update FILE ID",
		Short: "Update object fields",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(app, args[0])
			if err != nil {
				return err
			}
			id, err := resolveObjectID(s.doc, args[1])
			if err != nil {
				return err
			}
			rowID := ""
			if rowStr != "" {
				if rowID, err = resolveRowID(s.doc, rowStr); err != nil {
					return err
				}
			}
			s.ctrl.UpdateObject(id, "Update Object", applyObjectFlags(cmd.Flags(), objectEdit{
				text: text, color: color, rowID: rowID,
				startWeek: startWeek, endWeek: endWeek, size: size,
			}))
			if err := s.save(context.Background()); err != nil {
				return err
			}
			fmt.Println("Updated object.")
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Label text")
	cmd.Flags().StringVar(&color, "color", "", "Color (#RRGGBB)")
	cmd.Flags().StringVar(&rowStr, "row", "", "Move to row")
	cmd.Flags().IntVar(&startWeek, "start", 0, "Start week")
	cmd.Flags().IntVar(&endWeek, "end", 0, "End week")
	cmd.Flags().IntVar(&size, "size", 0, "Size (1-5)")

	return cmd
}

type objectEdit struct {
	text, color, rowID       string
	startWeek, endWeek, size int
}

// applyObjectFlags builds the mutate closure for `object update`, touching
// only fields whose flags were set on the command line.
func applyObjectFlags(flags *pflag.FlagSet, edit objectEdit) func(*domain.CanvasObject) {
	return func(obj *domain.CanvasObject) {
		if flags.Changed("text") {
			obj.Text = edit.text
		}
		if flags.Changed("color") {
			obj.Color = edit.color
		}
		if flags.Changed("size") {
			obj.Size = edit.size
		}
		if flags.Changed("start") {
			obj.StartWeek = edit.startWeek
		}
		if flags.Changed("end") {
			obj.EndWeek = edit.endWeek
		}
		if edit.rowID != "" {
			obj.RowID = edit.rowID
		}
	}
}

func newObjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove FILE ID",
		Short: "Remove an object and its attachments",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(app, args[0])
			if err != nil {
				return err
			}
			id, err := resolveObjectID(s.doc, args[1])
			if err != nil {
				return err
			}
			s.ctrl.RemoveObject(id)
			if err := s.save(context.Background()); err != nil {
				return err
			}
			fmt.Println("Removed object.")
			return nil
		},
	}
}

func newObjectDuplicateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "duplicate FILE ID",
		Short: "Duplicate an object, shifted past the original",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(app, args[0])
			if err != nil {
				return err
			}
			id, err := resolveObjectID(s.doc, args[1])
			if err != nil {
				return err
			}
			dup := s.ctrl.DuplicateObject(id)
			if dup == nil {
				return fmt.Errorf("cannot duplicate %q", args[1])
			}
			if err := s.save(context.Background()); err != nil {
				return err
			}
			fmt.Printf("Duplicated as [%s]\n", dup.ID[:8])
			return nil
		},
	}
}

func newObjectReorderCmd(app *App) *cobra.Command {
	var action string

	cmd := &cobra.Command{
		Use:   "reorder FILE ID...",
		Short: "Change stacking order of the given objects",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reorder := controller.ReorderAction(action)
			switch reorder {
			case controller.ReorderFront, controller.ReorderBack,
				controller.ReorderForward, controller.ReorderBackward:
			default:
				return fmt.Errorf("invalid action %q (use front, back, forward or backward)", action)
			}

			s, err := openSession(app, args[0])
			if err != nil {
				return err
			}
			ids := make([]string, 0, len(args)-1)
			for _, arg := range args[1:] {
				id, err := resolveObjectID(s.doc, arg)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			s.ctrl.ReorderObjects(ids, reorder)
			if err := s.save(context.Background()); err != nil {
				return err
			}
			fmt.Println("Reordered objects.")
			return nil
		},
	}

	cmd.Flags().StringVar(&action, "action", "front", "front, back, forward or backward")

	return cmd
}

func newObjectLinkCmd(app *App) *cobra.Command {
	var side string

	cmd := &cobra.Command{
		Use:   "link FILE TEXTBOX TARGET",
		Short: "Anchor a textbox to an object edge",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(app, args[0])
			if err != nil {
				return err
			}
			sourceID, err := resolveObjectID(s.doc, args[1])
			if err != nil {
				return err
			}
			targetID, err := resolveObjectID(s.doc, args[2])
			if err != nil {
				return err
			}
			s.ctrl.AddAnchorLink(sourceID, targetID, domain.Side(side), nil)
			if err := s.save(context.Background()); err != nil {
				return err
			}
			fmt.Println("Linked textbox.")
			return nil
		},
	}

	cmd.Flags().StringVar(&side, "side", "right", "Anchor side on the source textbox (left, right, top, bottom)")

	return cmd
}

func newObjectConnectCmd(app *App) *cobra.Command {
	var sourceSide, targetSide string

	cmd := &cobra.Command{
		Use:   "connect FILE SOURCE TARGET",
		Short: "Draw a connector arrow between two objects",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(app, args[0])
			if err != nil {
				return err
			}
			sourceID, err := resolveObjectID(s.doc, args[1])
			if err != nil {
				return err
			}
			targetID, err := resolveObjectID(s.doc, args[2])
			if err != nil {
				return err
			}
			s.ctrl.AddConnectorArrow(sourceID, targetID,
				domain.Side(sourceSide), nil, domain.Side(targetSide), nil)
			if err := s.save(context.Background()); err != nil {
				return err
			}
			fmt.Println("Connected objects.")
			return nil
		},
	}

	cmd.Flags().StringVar(&sourceSide, "from-side", "", "Side on the source object (default right)")
	cmd.Flags().StringVar(&targetSide, "to-side", "", "Side on the target object (default left)")

	return cmd
}
