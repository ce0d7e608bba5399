package api

import "context"

// The fitness endpoints return free-form JSON that the client renders
// generically, so every call decodes into a bare map.

// FitnessResult is an opaque server response, rendered as-is.
type FitnessResult = map[string]any

func (c *Client) fitness(ctx context.Context, path string, payload any) (FitnessResult, error) {
	var out FitnessResult
	if err := c.postJSON(ctx, path, payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FitnessProfile creates a fitness profile from the submitted fields.
func (c *Client) FitnessProfile(ctx context.Context, payload any) (FitnessResult, error) {
	return c.fitness(ctx, "/api/fitness/profile", payload)
}

// FitnessRoutine generates a weekly routine for the profile.
func (c *Client) FitnessRoutine(ctx context.Context, payload any) (FitnessResult, error) {
	return c.fitness(ctx, "/api/fitness/routine", payload)
}

// FitnessAdvice returns personalized advice; the payload may carry a
// "concern" field next to the profile.
func (c *Client) FitnessAdvice(ctx context.Context, payload any) (FitnessResult, error) {
	return c.fitness(ctx, "/api/fitness/advice", payload)
}

// FitnessMealPrep returns a meal prep guide for the profile.
func (c *Client) FitnessMealPrep(ctx context.Context, payload any) (FitnessResult, error) {
	return c.fitness(ctx, "/api/fitness/meal-prep", payload)
}

// FitnessBMI calculates BMI from weight and height.
func (c *Client) FitnessBMI(ctx context.Context, payload any) (FitnessResult, error) {
	return c.fitness(ctx, "/api/fitness/bmi-calculator", payload)
}
