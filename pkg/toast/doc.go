// Package toast provides dismissible notifications for VangoUI.
//
// A Toast owns one notification's visibility. It is created visible and
// moves to Dismissed exactly once, either when the user presses the close
// button, when code calls Close, or when the optional auto-close timer
// expires. Dismissed is terminal: the toast renders nothing afterwards.
//
//	t := toast.New(clock,
//	    toast.Error(),
//	    toast.WithTitle("Error!"),
//	    toast.WithMessage("Failed to delete project"),
//	    toast.AutoClose(3*time.Second),
//	    toast.OnClose(func() { log.Println("closed") }),
//	)
//	defer t.Teardown()
//
// # Teardown
//
// Teardown must be called when the hosting view goes away. It cancels a
// pending auto-close timer so no callback reaches a destroyed view.
// Teardown does not run OnClose.
//
// # Toaster
//
// Toaster keeps a stack of toasts per screen position and drops them once
// dismissed:
//
//	toaster := toast.NewToaster(clock)
//	toaster.Success("Project deleted")
//	toaster.Error("Failed to save", toast.WithTitle("Settings"))
package toast
