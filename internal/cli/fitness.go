package cli

import (
	"flag"

	"github.com/terracotta-tales/terracotta/internal/api"
	"github.com/terracotta-tales/terracotta/internal/fitness"
	"github.com/terracotta-tales/terracotta/internal/ui"
)

// The fitness advice form lives on a separate page of the site; here it is
// a family of subcommands sharing one flag set.

func doFitness(app *App, sub string, args []string) int {
	fs := flag.NewFlagSet("fitness "+sub, flag.ContinueOnError)
	weight := fs.Float64("weight", 0, "weight in kg")
	height := fs.Float64("height", 0, "height in cm")
	age := fs.Int("age", 0, "age in years")
	goal := fs.String("goal", "general_fitness", "fitness goal")
	experience := fs.String("experience", "beginner", "experience level")
	diet := fs.String("diet", "", "comma-separated dietary restrictions")
	concern := fs.String("concern", "", "what to ask about (advice only)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *weight <= 0 || *height <= 0 {
		ui.Fail("fitness: -weight and -height are required")
		return 2
	}

	// BMI needs only the measurements.
	if sub == "bmi" {
		return fitnessCall(app, "BMI", func() (api.FitnessResult, error) {
			return app.Client.FitnessBMI(app.ctx(), fitness.BMIRequest{
				WeightKg: *weight,
				HeightCm: *height,
			})
		})
	}

	if *age <= 0 {
		ui.Fail("fitness: -age is required")
		return 2
	}
	profile := fitness.Profile{
		WeightKg:            *weight,
		HeightCm:            *height,
		Age:                 *age,
		Goal:                *goal,
		ExperienceLevel:     *experience,
		DietaryRestrictions: fitness.ParseRestrictions(*diet),
	}

	switch sub {
	case "profile":
		return fitnessCall(app, "Your Profile", func() (api.FitnessResult, error) {
			return app.Client.FitnessProfile(app.ctx(), profile)
		})
	case "routine":
		return fitnessCall(app, "Weekly Routine", func() (api.FitnessResult, error) {
			return app.Client.FitnessRoutine(app.ctx(), profile)
		})
	case "meal-prep":
		return fitnessCall(app, "Meal Prep Guide", func() (api.FitnessResult, error) {
			return app.Client.FitnessMealPrep(app.ctx(), profile)
		})
	case "advice":
		return fitnessCall(app, "Advice", func() (api.FitnessResult, error) {
			return app.Client.FitnessAdvice(app.ctx(), fitness.AdviceRequest{
				Profile: profile,
				Concern: *concern,
			})
		})
	}

	ui.Fail("usage: terracotta fitness <profile|routine|advice|meal-prep|bmi>")
	return 2
}

func fitnessCall(app *App, title string, call func() (api.FitnessResult, error)) int {
	res, err := call()
	if err != nil {
		ui.Fail("Error: " + err.Error())
		return 1
	}
	ui.Panel(fitness.RenderResult(res, title))
	return 0
}
