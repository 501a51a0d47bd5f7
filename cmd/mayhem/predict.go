package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kingrea/dashboard-mayhem/internal/content"
	"github.com/kingrea/dashboard-mayhem/internal/screens"
)

func newPredictCmd(c *cli) *cobra.Command {
	var age, income int
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Apply the level 6 purchase rule to an age and income",
		Example: `  mayhem predict --age 35 --income 50000
  mayhem predict --income 42000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := c.journey()
			if err != nil {
				return err
			}
			p := j.Prediction
			if !cmd.Flags().Changed("age") {
				age = p.Age.Default
			}
			if !cmd.Flags().Changed("income") {
				income = p.Income.Default
			}
			if err := checkRange("age", age, p.Age); err != nil {
				return err
			}
			if err := checkRange("income", income, p.Income); err != nil {
				return err
			}

			likely := p.Rule.Predict(age, income)
			c.logger.Info("prediction",
				zap.Int("age", age),
				zap.Int("income", income),
				zap.Bool("likely", likely),
			)
			verdict := "Unlikely to Purchase ❌"
			if likely {
				verdict = "Likely to Purchase ✅"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Age: %d, Income: %s\n", age, screens.Money(income))
			fmt.Fprintf(out, "Prediction: %s\n", verdict)
			fmt.Fprintln(out, p.FeedbackFor(likely))
			return nil
		},
	}
	cmd.Flags().IntVar(&age, "age", 0, "customer age (defaults to the slider default)")
	cmd.Flags().IntVar(&income, "income", 0, "yearly income in dollars (defaults to the slider default)")
	return cmd
}

func checkRange(name string, v int, s content.Slider) error {
	if v < s.Min || v > s.Max {
		return fmt.Errorf("predict: %s %d is outside %d-%d", name, v, s.Min, s.Max)
	}
	return nil
}
