package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"infernocorp/internal/app/history"
	lifecycleapp "infernocorp/internal/app/lifecycle"
	"infernocorp/internal/app/management"
	missionapp "infernocorp/internal/app/mission"
	"infernocorp/internal/app/status"
)

func renderText(out io.Writer, result any) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	switch v := result.(type) {
	case status.Response:
		renderState(w, v)
	case management.RoomResponse:
		fmt.Fprintf(w, "%s is now level %d (%s). Next upgrade: %d credits.\n", v.Room.Name, v.Room.Level, v.Room.Bonus(), v.Room.UpgradeCost)
		fmt.Fprintf(w, "Credits left: %d\n", v.State.Resources.Credits)
	case management.EquipmentResponse:
		fmt.Fprintf(w, "Forged %s [%s] id=%s durability=%d\n", v.Equipment.Name, v.Equipment.Type, v.Equipment.ID, v.Equipment.Durability)
		fmt.Fprintf(w, "Credits left: %d\n", v.State.Resources.Credits)
	case missionapp.SelectResponse:
		fmt.Fprintf(w, "Team selected. Success chance: %d%%\n", v.Chance.Display)
	case missionapp.ExecuteResponse:
		renderMission(w, v)
	case lifecycleapp.TickResponse:
		fmt.Fprintf(w, "Day %d begins.\n", v.Report.Day)
		if len(v.Report.Retired) > 0 {
			fmt.Fprintf(w, "Retired: %s\n", strings.Join(v.Report.Retired, ", "))
		}
		if v.Report.Corporate != nil {
			fmt.Fprintf(w, "Corporate event: %s\n", v.Report.Corporate.Message)
		}
	case lifecycleapp.EventResponse:
		fmt.Fprintf(w, "%s: %s\n", v.Outcome.Event.Name, v.Outcome.Message)
	case history.Response:
		renderHistory(w, v)
	case infoView:
		fmt.Fprintf(w, "Backend:\t%s\n", v.Backend)
		fmt.Fprintf(w, "Restored save:\t%t\n", v.Restored)
		fmt.Fprintf(w, "Day:\t%d\n", v.Save.Day)
		fmt.Fprintf(w, "Operations:\t%d\n", v.Save.Operations)
		if v.Save.LastOp != "" {
			fmt.Fprintf(w, "Last operation:\t%s (seed %d)\n", v.Save.LastOp, v.Save.LastSeed)
		}
		fmt.Fprintf(w, "Planets / rooms:\t%d / %d\n", v.Planets, v.Rooms)
		fmt.Fprintf(w, "Prices:\trecruit %d, refresh %d, craft %d, repair %d/pt\n",
			v.Prices.Recruit, v.Prices.PoolRefresh, v.Prices.Craft, v.Prices.RepairPerDurability)
	default:
		fmt.Fprintf(w, "%+v\n", v)
	}
	return w.Flush()
}

func renderState(w io.Writer, v status.Response) {
	fmt.Fprintf(w, "Day %d  credits %d  soul essence %d  leverage %d\n\n",
		v.Day, v.Resources.Credits, v.Resources.SoulEssence, v.Resources.BureaucraticLeverage)

	fmt.Fprintln(w, "DAEMON\tSPEC\tHEALTH\tMORALE\tLIFESPAN\tSTATUS\tEQUIPMENT")
	for _, d := range v.Daemons {
		state := "active"
		if !d.Active {
			state = "retired"
		}
		item := "-"
		if d.Equipment != nil {
			item = fmt.Sprintf("%s (%d)", d.Equipment.Name, d.Equipment.Durability)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\t%s\n", d.ID, d.Specialization, d.Health, d.Morale, d.LifespanDays, state, item)
	}

	fmt.Fprintln(w, "\nROOM\tLEVEL\tUPGRADE\tBONUS")
	for _, r := range v.Rooms {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", r.ID, r.Level, r.UpgradeCost, r.Bonus)
	}

	fmt.Fprintln(w, "\nPLANET\tDIFFICULTY\tCONQUERED")
	for _, p := range v.Planets {
		fmt.Fprintf(w, "%s\t%s\t%t\n", p.ID, p.Difficulty, p.Conquered)
	}

	if len(v.Pool) > 0 {
		fmt.Fprintln(w, "\nCANDIDATE\tSPEC\tHEALTH\tMORALE\tCOST")
		for _, c := range v.Pool {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n", c.Daemon.ID, c.Daemon.Specialization, c.Daemon.Health, c.Daemon.Morale, c.Cost)
		}
	}
	if v.Selection.Preview != nil {
		fmt.Fprintf(w, "\nSelected team for %s: %s (%d%%)\n", v.Selection.PlanetID, strings.Join(v.Selection.DaemonIDs, ", "), v.Selection.Preview.Display)
	}
}

func renderMission(w io.Writer, v missionapp.ExecuteResponse) {
	r := v.Result
	outcome := "FAILED"
	if r.Success {
		outcome = "SUCCESS"
	}
	fmt.Fprintf(w, "%s on %s (%d%%)\n%s\n\n", outcome, r.PlanetName, r.SuccessChance, r.Narrative)
	fmt.Fprintln(w, "DAEMON\tSURVIVED\tHEALTH\tMORALE\tLIFESPAN\tRETIRED")
	for _, c := range r.Casualties {
		fmt.Fprintf(w, "%s\t%t\t-%d\t-%d\t-%d\t%t\n", c.Name, c.Survived, c.HealthLoss, c.MoraleLoss, c.LifespanLoss, c.Retired)
	}
	fmt.Fprintf(w, "\nRewards: %d credits, %d soul essence, %d leverage\n",
		r.Rewards.Credits, r.Rewards.SoulEssence, r.Rewards.BureaucraticLeverage)
}

func renderHistory(w io.Writer, v history.Response) {
	fmt.Fprintln(w, "DAY\tTYPE\tAT")
	for _, e := range v.Events {
		fmt.Fprintf(w, "%d\t%s\t%s\n", e.Day, e.Type, e.OccurredAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintf(w, "\n%d missions (%d successful), %d retirements, %d conquests\n",
		v.Summary.Missions, v.Summary.Successes, v.Summary.Retirements, v.Summary.Conquests)
}
