package aoc2023

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const day19System = `px{a<2006:qkq,m>2090:A,rfg}
pv{a>1716:R,A}
lnx{m>1548:A,A}
rfg{s<537:gd,x>2440:R,A}
qs{s>3448:A,lnx}
qkq{x<1416:A,crn}
crn{x>2662:A,R}
in{s<1351:px,qqz}
qqz{s>2770:qs,m<1801:hdj,R}
gd{a>3333:R,R}
hdj{m>838:A,pv}

{x=787,m=2655,a=1222,s=2876}
{x=1679,m=44,a=2067,s=496}
{x=2036,m=264,a=79,s=2244}
{x=2461,m=1339,a=466,s=291}
{x=2127,m=1623,a=2188,s=1013}`

func TestDay19Part1(t *testing.T) {
	got, err := Day19Part1(day19System)
	require.NoError(t, err)
	require.Equal(t, 19114, got)
}

func TestDay19Part2(t *testing.T) {
	got, err := Day19Part2(day19System)
	require.NoError(t, err)
	require.Equal(t, 167409079868000, got)
}

func TestWorkflowRuleApply(t *testing.T) {
	rule := workflowRule{attr: 's', comp: '<', value: 1351, result: "px"}
	part := machinePart{'x': 787, 'm': 2655, 'a': 1222, 's': 2876}
	_, ok := rule.apply(part)
	require.False(t, ok)

	part['s'] = 496
	result, ok := rule.apply(part)
	require.True(t, ok)
	require.Equal(t, "px", result)

	fallthroughRule := workflowRule{result: "qqz"}
	result, ok = fallthroughRule.apply(part)
	require.True(t, ok)
	require.Equal(t, "qqz", result)
}

func TestMachinePartScore(t *testing.T) {
	cases := []struct {
		part machinePart
		want int
	}{
		{machinePart{'x': 787, 'm': 2655, 'a': 1222, 's': 2876}, 7540},
		{machinePart{'x': 2036, 'm': 264, 'a': 79, 's': 2244}, 4623},
		{machinePart{'x': 2127, 'm': 1623, 'a': 2188, 's': 1013}, 6951},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.part.score())
	}
}

func TestParseWorkflowsRejectsBadInput(t *testing.T) {
	_, _, err := parseWorkflows("in{s<1351:px,qqz}")
	require.ErrorIs(t, err, ErrBadInput)
}
