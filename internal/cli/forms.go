package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/zakarianasim073/construction-project-monitoring/internal/domain"
)

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validateNumber(s string) error {
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}

func parseAmount(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return v, nil
}

// runProjectForm collects project creation input interactively.
func runProjectForm(name, value, start, end *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Project Name").Value(name),
			huh.NewInput().Title("Contract Value").Placeholder("95000000").Value(value).Validate(validateNumber),
			huh.NewInput().Title("Start Date (YYYY-MM-DD)").Value(start).Validate(validateOptionalDate),
			huh.NewInput().Title("End Date (YYYY-MM-DD)").Value(end).Validate(validateOptionalDate),
		),
	).WithShowHelp(false).Run()
}

// runDPRForm collects a daily report interactively, offering the project's
// BOQ lines for the optional link.
func runDPRForm(p *domain.Project, activity, location, remarks, date, boqID *string, labor *int, workDone *float64) error {
	laborStr := ""
	qtyStr := ""

	lineOptions := []huh.Option[string]{huh.NewOption("(not linked)", "")}
	for _, l := range p.BOQ {
		lineOptions = append(lineOptions, huh.NewOption(l.ID+" — "+l.Description, l.ID))
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Activity").Value(activity),
			huh.NewInput().Title("Location").Value(location),
			huh.NewInput().Title("Date (YYYY-MM-DD, blank for today)").Value(date).Validate(validateOptionalDate),
			huh.NewInput().Title("Labor Headcount").Placeholder("0").Value(&laborStr).Validate(validateNumber),
			huh.NewText().Title("Remarks").Value(remarks),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Linked BOQ Line").Options(lineOptions...).Value(boqID),
			huh.NewInput().Title("Quantity Completed Today").Placeholder("0").Value(&qtyStr).Validate(validateNumber),
		),
	).WithShowHelp(false).Run()
	if err != nil {
		return err
	}

	if laborStr != "" {
		n, err := strconv.Atoi(laborStr)
		if err != nil {
			return fmt.Errorf("invalid labor count %q", laborStr)
		}
		*labor = n
	}
	if qtyStr != "" {
		q, err := parseAmount(qtyStr)
		if err != nil {
			return err
		}
		*workDone = q
	}
	return nil
}
