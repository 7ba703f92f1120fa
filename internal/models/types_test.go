package models

import (
	"testing"
)

func TestResourceSetGetSet(t *testing.T) {
	var r ResourceSet
	for i, rt := range AllResourceTypes() {
		r.Set(rt, i+1)
	}

	if r != (ResourceSet{Ore: 1, Clay: 2, Obsidian: 3, Geode: 4}) {
		t.Fatalf("Set produced %+v", r)
	}
	for i, rt := range AllResourceTypes() {
		if got := r.Get(rt); got != i+1 {
			t.Errorf("Get(%s) = %d, want %d", rt, got, i+1)
		}
	}
	if got := r.Get(ResourceType("gold")); got != 0 {
		t.Errorf("Get(unknown) = %d, want 0", got)
	}
}

func TestResourceSetEachOrder(t *testing.T) {
	r := ResourceSet{Ore: 1, Clay: 2, Obsidian: 3, Geode: 4}

	var order []ResourceType
	r.Each(func(rt ResourceType, amount int) {
		order = append(order, rt)
		if amount != r.Get(rt) {
			t.Errorf("Each(%s) passed %d, want %d", rt, amount, r.Get(rt))
		}
	})

	want := AllResourceTypes()
	if len(order) != len(want) {
		t.Fatalf("Each visited %d kinds, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Each order[%d] = %s, want %s", i, order[i], want[i])
		}
	}
}

func TestCanProduceEventually(t *testing.T) {
	tests := []struct {
		name       string
		production ResourceSet
		cost       ResourceSet
		want       bool
	}{
		{"ore only", ResourceSet{Ore: 1}, ResourceSet{Ore: 4}, true},
		{"missing clay", ResourceSet{Ore: 1}, ResourceSet{Ore: 3, Clay: 14}, false},
		{"clay producing", ResourceSet{Ore: 1, Clay: 1}, ResourceSet{Ore: 3, Clay: 14}, true},
		{"missing obsidian", ResourceSet{Ore: 2, Clay: 3}, ResourceSet{Ore: 2, Obsidian: 7}, false},
		{"missing geode", ResourceSet{Ore: 1}, ResourceSet{Geode: 1}, false},
		{"free", ResourceSet{}, ResourceSet{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.production.CanProduceEventually(tt.cost); got != tt.want {
				t.Errorf("CanProduceEventually = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanAffordAndSpend(t *testing.T) {
	stock := ResourceSet{Ore: 3, Clay: 14, Obsidian: 1}
	cost := ResourceSet{Ore: 3, Clay: 14}

	if !stock.CanAfford(cost) {
		t.Fatal("exact stock should afford cost")
	}
	stock.Spend(cost)
	if stock != (ResourceSet{Obsidian: 1}) {
		t.Errorf("after Spend = %+v", stock)
	}
	if stock.CanAfford(ResourceSet{Ore: 1}) {
		t.Error("empty ore should not afford 1 ore")
	}
}

func TestSpendUnaffordablePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Spend on unaffordable cost did not panic")
		}
	}()

	stock := ResourceSet{Ore: 1}
	stock.Spend(ResourceSet{Ore: 2})
}

func TestAddProduction(t *testing.T) {
	stock := ResourceSet{Ore: 1, Geode: 2}
	stock.AddProduction(ResourceSet{Ore: 2, Clay: 1, Obsidian: 3, Geode: 1})

	if stock != (ResourceSet{Ore: 3, Clay: 1, Obsidian: 3, Geode: 3}) {
		t.Errorf("AddProduction = %+v", stock)
	}

	production := ResourceSet{Ore: 1}
	next := production.Add(Unit(Clay))
	if production != (ResourceSet{Ore: 1}) {
		t.Errorf("Add mutated receiver: %+v", production)
	}
	if next != (ResourceSet{Ore: 1, Clay: 1}) {
		t.Errorf("Add = %+v", next)
	}
}

func TestResourceSetString(t *testing.T) {
	if got := (ResourceSet{Ore: 3, Clay: 14}).String(); got != "3 ore and 14 clay" {
		t.Errorf("String() = %q", got)
	}
	if got := (ResourceSet{}).String(); got != "nothing" {
		t.Errorf("String() = %q", got)
	}
}

func TestNewBlueprint(t *testing.T) {
	bp := NewBlueprint(1, 4, 2, 3, 14, 2, 7)

	if bp.ID != 1 {
		t.Errorf("ID = %d, want 1", bp.ID)
	}

	wantCosts := []ResourceSet{
		{Ore: 4},
		{Ore: 2},
		{Ore: 3, Clay: 14},
		{Ore: 2, Obsidian: 7},
	}
	for i, rt := range AllResourceTypes() {
		robot := bp.Robots[i]
		if robot.Kind != rt {
			t.Errorf("robot %d kind = %s, want %s", i, robot.Kind, rt)
		}
		if robot.Cost != wantCosts[i] {
			t.Errorf("%s robot cost = %+v, want %+v", rt, robot.Cost, wantCosts[i])
		}
		if robot.Production != Unit(rt) {
			t.Errorf("%s robot production = %+v", rt, robot.Production)
		}
		if bp.Robot(rt) != robot {
			t.Errorf("Robot(%s) did not return robot %d", rt, i)
		}
	}

	if got := bp.MaxCost(); got != (ResourceSet{Ore: 4, Clay: 14, Obsidian: 7}) {
		t.Errorf("MaxCost = %+v", got)
	}
}
