package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
)

func TestResponseSetLookups(t *testing.T) {
	rs := model.NewResponseSet([]model.Response{
		{QuestionID: "q_text", Answer: "high crime area"},
		{QuestionID: "q_bool", Answer: true},
		{QuestionID: "q_yes", Answer: "Yes"},
		{QuestionID: "q_no", Answer: "no"},
		{QuestionID: "q_num", Answer: 4},
		{QuestionID: "q_float", Answer: 2.5},
		{QuestionID: "q_list", Answer: []string{"a", "b"}},
		{QuestionID: "q_mixed", Answer: []any{"a", 1, "b"}},
	})

	t.Run("Text", func(t *testing.T) {
		gt.Value(t, rs.Text("q_text")).Equal("high crime area")
		gt.Value(t, rs.Text("q_bool")).Equal("")
		gt.Value(t, rs.Text("q_missing")).Equal("")
	})

	t.Run("Bool accepts explicit affirmatives only", func(t *testing.T) {
		gt.Bool(t, rs.Bool("q_bool")).True()
		gt.Bool(t, rs.Bool("q_yes")).True()
		gt.Bool(t, rs.Bool("q_no")).False()
		gt.Bool(t, rs.Bool("q_text")).False()
		gt.Bool(t, rs.Bool("q_missing")).False()
	})

	t.Run("No requires an explicit negative", func(t *testing.T) {
		gt.Bool(t, rs.No("q_no")).True()
		gt.Bool(t, rs.No("q_text")).True()
		gt.Bool(t, rs.No("q_bool")).False()
		gt.Bool(t, rs.No("q_yes")).False()
		// Absent answers are neutral, not negative.
		gt.Bool(t, rs.No("q_missing")).False()
		gt.Bool(t, model.ResponseSet{"q": {QuestionID: "q", Answer: nil}}.No("q")).False()
	})

	t.Run("Number", func(t *testing.T) {
		n, ok := rs.Number("q_num")
		gt.Bool(t, ok).True()
		gt.Number(t, n).Equal(4)

		n, ok = rs.Number("q_float")
		gt.Bool(t, ok).True()
		gt.Number(t, n).Equal(2.5)

		_, ok = rs.Number("q_text")
		gt.Bool(t, ok).False()
		_, ok = rs.Number("q_missing")
		gt.Bool(t, ok).False()
	})

	t.Run("List filters non-string elements", func(t *testing.T) {
		gt.Array(t, rs.List("q_list")).Equal([]string{"a", "b"})
		gt.Array(t, rs.List("q_mixed")).Equal([]string{"a", "b"})
		gt.Value(t, rs.List("q_missing")).Nil()
	})

	t.Run("Has", func(t *testing.T) {
		gt.Bool(t, rs.Has("q_text")).True()
		gt.Bool(t, rs.Has("q_missing")).False()
		gt.Bool(t, model.ResponseSet{"q": {QuestionID: "q", Answer: nil}}.Has("q")).False()
	})

	t.Run("nil set never raises", func(t *testing.T) {
		var nilSet model.ResponseSet
		gt.Bool(t, nilSet.Bool("q")).False()
		gt.Bool(t, nilSet.No("q")).False()
		gt.Value(t, nilSet.Text("q")).Equal("")
		_, ok := nilSet.Number("q")
		gt.Bool(t, ok).False()
		gt.Value(t, nilSet.List("q")).Nil()
		gt.Bool(t, nilSet.Has("q")).False()
	})
}

func TestNewResponseSetLastWins(t *testing.T) {
	rs := model.NewResponseSet([]model.Response{
		{QuestionID: "q", Answer: "first"},
		{QuestionID: "q", Answer: "second"},
	})
	gt.Value(t, rs.Text("q")).Equal("second")
}

func TestSplitControls(t *testing.T) {
	cs := model.SplitControls([]model.Control{
		{ID: "c1", ThreatID: "t", ControlType: types.ControlTypeExisting},
		{ID: "c2", ThreatID: "t", ControlType: types.ControlTypeProposed},
		{ID: "c3", ThreatID: "t", ControlType: types.ControlType("planned")},
		{ID: "c4", ThreatID: "t", ControlType: types.ControlTypeExisting},
	})

	gt.Array(t, cs.Existing).Length(2)
	gt.Array(t, cs.Proposed).Length(1)
}

func TestControlValidate(t *testing.T) {
	valid := model.Control{
		ID: "ctl_1", ThreatID: "forced_entry",
		ControlType: types.ControlTypeExisting, Effectiveness: 3,
	}
	gt.NoError(t, valid.Validate())

	cases := map[string]func(c *model.Control){
		"missing ID":             func(c *model.Control) { c.ID = "" },
		"malformed threat ID":    func(c *model.Control) { c.ThreatID = "Forced Entry" },
		"unknown control type":   func(c *model.Control) { c.ControlType = "planned" },
		"effectiveness too big":  func(c *model.Control) { c.Effectiveness = 6 },
		"negative effectiveness": func(c *model.Control) { c.Effectiveness = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid
			mutate(&c)
			gt.Error(t, c.Validate())
		})
	}
}

func TestAssessmentSnapshotControlsFor(t *testing.T) {
	snapshot := &model.AssessmentSnapshot{
		Controls: map[types.ThreatID][]model.Control{
			"forced_entry": {
				{ID: "c1", ThreatID: "forced_entry", ControlType: types.ControlTypeExisting},
				{ID: "c2", ThreatID: "forced_entry", ControlType: types.ControlTypeProposed},
			},
		},
	}

	cs := snapshot.ControlsFor("forced_entry")
	gt.Array(t, cs.Existing).Length(1)
	gt.Array(t, cs.Proposed).Length(1)

	gt.Array(t, snapshot.ControlsFor("vandalism").Existing).Length(0)

	var nilSnapshot *model.AssessmentSnapshot
	gt.Array(t, nilSnapshot.ControlsFor("forced_entry").Existing).Length(0)
}
