package cli

import (
	"context"
	"fmt"
	"log/slog"

	"catalog/internal/client/api"
	"catalog/internal/errors"

	"github.com/google/uuid"
)

// fail routes an action error to its screen.
func (d *Deps) fail(ctx context.Context, err error) string {
	switch {
	case errors.Is(err, api.ErrForbidden):
		return pathForbidden
	case errors.Is(err, api.ErrNotFound):
		return pathNotFound
	case errors.Is(err, api.ErrUnauthorized):
		// stored credentials no longer work
		return pathForbidden
	default:
		d.Logger.ErrorContext(ctx, "Request failed", slog.Any("error", err))

		return pathError
	}
}

func (d *Deps) owns(course *api.Course) bool {
	user := d.Session.Current()

	return user != nil && course.UserID == user.ID
}

func courseID(params Params) (uuid.UUID, bool) {
	id, err := uuid.Parse(params["id"])

	return id, err == nil
}

func coursesScreen(ctx context.Context, d *Deps, _ Params) string {
	courses, err := d.Actions.Courses(ctx)
	if err != nil {
		return d.fail(ctx, err)
	}

	fmt.Fprintln(d.Out, "\nCourses")
	if len(courses) == 0 {
		fmt.Fprintln(d.Out, "  (none yet)")
	}
	for _, course := range courses {
		fmt.Fprintf(d.Out, "  %s  /courses/%s\n", course.Title, course.ID)
	}
	fmt.Fprintln(d.Out, "+ New Course: /courses/create")

	return ""
}

func courseDetailScreen(ctx context.Context, d *Deps, params Params) string {
	id, ok := courseID(params)
	if !ok {
		return pathNotFound
	}

	course, err := d.Actions.Course(ctx, id)
	if err != nil {
		return d.fail(ctx, err)
	}

	renderCourse(d.Out, course, d.owns(course))

	return ""
}

func createCourseScreen(ctx context.Context, d *Deps, _ Params) string {
	creds, ok := d.Session.Credentials()
	if !ok {
		return pathForbidden
	}

	fmt.Fprintln(d.Out, "\nCreate Course")
	input, err := courseForm(d, api.CourseInput{})
	if err != nil {
		return d.fail(ctx, err)
	}

	id, errs, err := d.Actions.CreateCourse(ctx, input, creds)
	if err != nil {
		return d.fail(ctx, err)
	}
	if len(errs) > 0 {
		renderErrors(d.Out, errs)

		return ""
	}

	return "/courses/" + id.String()
}

func updateCourseScreen(ctx context.Context, d *Deps, params Params) string {
	id, ok := courseID(params)
	if !ok {
		return pathNotFound
	}
	creds, ok := d.Session.Credentials()
	if !ok {
		return pathForbidden
	}

	course, err := d.Actions.Course(ctx, id)
	if err != nil {
		return d.fail(ctx, err)
	}
	if !d.owns(course) {
		return pathForbidden
	}

	fmt.Fprintln(d.Out, "\nUpdate Course (enter keeps the current value)")
	input, err := courseForm(d, api.CourseInput{
		Title:           course.Title,
		Description:     course.Description,
		EstimatedTime:   course.EstimatedTime,
		MaterialsNeeded: course.MaterialsNeeded,
	})
	if err != nil {
		return d.fail(ctx, err)
	}

	errs, err := d.Actions.UpdateCourse(ctx, id, input, creds)
	if err != nil {
		return d.fail(ctx, err)
	}
	if len(errs) > 0 {
		renderErrors(d.Out, errs)

		return ""
	}

	return "/courses/" + id.String()
}

func deleteCourseScreen(ctx context.Context, d *Deps, params Params) string {
	id, ok := courseID(params)
	if !ok {
		return pathNotFound
	}
	creds, ok := d.Session.Credentials()
	if !ok {
		return pathForbidden
	}

	if err := d.Actions.DeleteCourse(ctx, id, creds); err != nil {
		return d.fail(ctx, err)
	}
	fmt.Fprintln(d.Out, "Course deleted.")

	return pathHome
}

func courseForm(d *Deps, current api.CourseInput) (api.CourseInput, error) {
	var (
		input api.CourseInput
		err   error
	)
	if input.Title, err = d.promptDefault("Course Title", current.Title); err != nil {
		return input, err
	}
	if input.Description, err = d.promptMultiline("Course Description", current.Description); err != nil {
		return input, err
	}
	if input.EstimatedTime, err = d.promptDefault("Estimated Time", current.EstimatedTime); err != nil {
		return input, err
	}
	if input.MaterialsNeeded, err = d.promptMultiline("Materials Needed (one per line)", current.MaterialsNeeded); err != nil {
		return input, err
	}

	return input, nil
}

func signInScreen(ctx context.Context, d *Deps, _ Params) string {
	fmt.Fprintln(d.Out, "\nSign In")
	email, err := d.prompt("Email Address")
	if err != nil {
		return d.fail(ctx, err)
	}
	password, err := d.promptSecret("Password")
	if err != nil {
		return d.fail(ctx, err)
	}

	user, err := d.Session.SignIn(ctx, email, password)
	if err != nil {
		return d.fail(ctx, err)
	}
	if user == nil {
		renderErrors(d.Out, []string{"Sign-in was unsuccessful"})

		return ""
	}
	fmt.Fprintf(d.Out, "Welcome, %s!\n", user.FirstName)

	return pathHome
}

func signUpScreen(ctx context.Context, d *Deps, _ Params) string {
	fmt.Fprintln(d.Out, "\nSign Up")

	var (
		user api.NewUser
		err  error
	)
	fields := []struct {
		label string
		dst   *string
	}{
		{"First Name", &user.FirstName},
		{"Last Name", &user.LastName},
		{"Email Address", &user.EmailAddress},
	}
	for _, f := range fields {
		if *f.dst, err = d.prompt(f.label); err != nil {
			return d.fail(ctx, err)
		}
	}
	if user.Password, err = d.promptSecret("Password"); err != nil {
		return d.fail(ctx, err)
	}
	confirm, err := d.promptSecret("Confirm Password")
	if err != nil {
		return d.fail(ctx, err)
	}
	if confirm != user.Password {
		renderErrors(d.Out, []string{"Passwords must match"})

		return ""
	}

	errs, err := d.Actions.Register(ctx, user)
	if err != nil {
		return d.fail(ctx, err)
	}
	if len(errs) > 0 {
		renderErrors(d.Out, errs)

		return ""
	}

	signedIn, err := d.Session.SignIn(ctx, user.EmailAddress, user.Password)
	if err != nil {
		return d.fail(ctx, err)
	}
	if signedIn != nil {
		fmt.Fprintf(d.Out, "Welcome, %s!\n", signedIn.FirstName)
	}

	return pathHome
}

func signOutScreen(ctx context.Context, d *Deps, _ Params) string {
	if err := d.Session.SignOut(ctx); err != nil {
		d.Logger.WarnContext(ctx, "Failed to clear stored session", slog.Any("error", err))
	}
	fmt.Fprintln(d.Out, "Signed out.")

	return pathHome
}

func forbiddenScreen(_ context.Context, d *Deps, _ Params) string {
	fmt.Fprintln(d.Out, "\nForbidden\nOh oh! You can't access this page.")

	return ""
}

func notFoundScreen(_ context.Context, d *Deps, _ Params) string {
	fmt.Fprintln(d.Out, "\nNot Found\nSorry! We couldn't find the page you're looking for.")

	return ""
}

func unhandledErrorScreen(_ context.Context, d *Deps, _ Params) string {
	fmt.Fprintln(d.Out, "\nError\nSorry! We just encountered an unexpected error.")

	return ""
}
