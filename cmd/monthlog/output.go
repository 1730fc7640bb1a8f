package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"sigs.k8s.io/yaml"

	"github.com/danielhkuo/monthlog/models"
)

// outputResult writes the result in the specified format.
func outputResult(out io.Writer, result interface{}, format string) error {
	switch format {
	case "json":
		return outputJSON(out, result)
	case "yaml":
		return outputYAML(out, result)
	default:
		return outputTable(out, result)
	}
}

func outputJSON(out io.Writer, result interface{}) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func outputYAML(out io.Writer, result interface{}) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

func outputTable(out io.Writer, result interface{}) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	switch r := result.(type) {
	case *models.HomeCMSResponse:
		return outputCatalogTable(w, r)
	case *models.CityDetailResponse:
		return outputCityTable(w, r)
	case *models.ContributionResponse:
		return outputContributionTable(w, r)
	case *models.User:
		return outputUserTable(w, r)
	default:
		// Payloads and anything else read best as YAML
		return outputYAML(out, result)
	}
}

func outputCatalogTable(w *tabwriter.Writer, r *models.HomeCMSResponse) error {
	fmt.Fprintf(w, "CITIES\t%s\n", humanize.Comma(int64(r.Stats.CityCount)))
	fmt.Fprintf(w, "CONTRIBUTIONS\t%s\n", humanize.Comma(int64(r.Stats.ContributionCount)))
	if r.UserInfo != nil {
		fmt.Fprintf(w, "LOGGED IN AS\t%s\n", r.UserInfo.Email)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "ID\tSLUG\tNAME\tCOUNTRY")
	for _, c := range r.Cities {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", c.ID, c.Slug, c.Name, c.Country)
	}

	return nil
}

func outputCityTable(w *tabwriter.Writer, r *models.CityDetailResponse) error {
	s := r.Stats
	fmt.Fprintf(w, "CITY\t%s (%s)\n", r.City.Name, r.City.Country)
	fmt.Fprintf(w, "SLUG\t%s\n", r.City.Slug)
	fmt.Fprintf(w, "CONTRIBUTIONS\t%s\n", humanize.Comma(int64(s.ContributionCount)))
	if s.LastContributionAt != nil {
		fmt.Fprintf(w, "LAST CONTRIBUTION\t%s\n", humanize.Time(*s.LastContributionAt))
	}
	if s.ContributionCount == 0 {
		return nil
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "STAT\tVALUE")
	fmt.Fprintf(w, "digital satisfaction (median)\t%s\n", humanize.FtoaWithDigits(s.DigitalSatisfactionMedian, 1))
	fmt.Fprintf(w, "digital satisfaction (mean)\t%s\n", humanize.FtoaWithDigits(s.DigitalSatisfactionMean, 1))
	fmt.Fprintf(w, "internet speed (median)\t%s Mbps\n", humanize.FtoaWithDigits(s.InternetSpeedMedian, 1))
	fmt.Fprintf(w, "monthly rent (median)\t%s\n", humanize.Commaf(s.MonthlyRentMedian))
	fmt.Fprintf(w, "cost satisfaction (median)\t%s\n", humanize.FtoaWithDigits(s.CostSatisfactionMedian, 1))

	return nil
}

func outputContributionTable(w *tabwriter.Writer, r *models.ContributionResponse) error {
	fmt.Fprintf(w, "CONTRIBUTION\t%s\n", r.ContributionID)
	fmt.Fprintf(w, "CITY ID\t%d\n", r.CityID)
	fmt.Fprintf(w, "CATEGORIES\t%v\n", r.Categories)
	if r.Message != "" {
		fmt.Fprintf(w, "MESSAGE\t%s\n", r.Message)
	}
	return nil
}

func outputUserTable(w *tabwriter.Writer, r *models.User) error {
	fmt.Fprintf(w, "USER\t%s\n", r.ID)
	fmt.Fprintf(w, "EMAIL\t%s\n", r.Email)
	fmt.Fprintf(w, "NICKNAME\t%s\n", r.Nickname)
	if !r.CreatedAt.IsZero() {
		fmt.Fprintf(w, "JOINED\t%s\n", humanize.Time(r.CreatedAt))
	}
	if r.Token != "" {
		fmt.Fprintf(w, "TOKEN\t%s\n", r.Token)
	}
	return nil
}
