package codegen

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestImportRegistryFinalizeSortsAndMerges(t *testing.T) {
	reg := NewImportRegistry()

	specs := []ImportSpec{
		{Path: "@acme/ui", ExportedName: "Card"},
		{Path: "react", LocalName: "React"},
		{Path: "@acme/ui", ExportedName: "Button"},
		{Path: "@acme/ui", ExportedName: "Card"},
		{Path: "@acme/layout", LocalName: "Layout", ExportedName: ""},
		{Path: "@acme/layout", ExportedName: "Grid", Alias: "LayoutGrid"},
	}
	for _, spec := range specs {
		if err := reg.Register(spec); err != nil {
			t.Fatalf("register %+v: %v", spec, err)
		}
	}

	want := []string{
		`import Layout, { Grid as LayoutGrid } from "@acme/layout";`,
		`import { Button, Card } from "@acme/ui";`,
		`import React from "react";`,
	}
	if diff := cmp.Diff(want, reg.Finalize()); diff != "" {
		t.Fatalf("finalize mismatch (-want +got):\n%s", diff)
	}
}

func TestImportRegistryFinalizeIsStable(t *testing.T) {
	build := func(order []ImportSpec) []string {
		reg := NewImportRegistry()
		for _, spec := range order {
			if err := reg.Register(spec); err != nil {
				t.Fatalf("register: %v", err)
			}
		}
		return reg.Finalize()
	}

	forward := []ImportSpec{
		{Path: "b", ExportedName: "B"},
		{Path: "a", ExportedName: "Z"},
		{Path: "a", ExportedName: "A"},
	}
	reverse := []ImportSpec{
		{Path: "a", ExportedName: "A"},
		{Path: "a", ExportedName: "Z"},
		{Path: "b", ExportedName: "B"},
	}
	if diff := cmp.Diff(build(forward), build(reverse)); diff != "" {
		t.Fatalf("registration order leaked into output:\n%s", diff)
	}
}

func TestImportRegistryDefaultConflict(t *testing.T) {
	reg := NewImportRegistry()
	if err := reg.Register(ImportSpec{Path: "react", LocalName: "React"}); err != nil {
		t.Fatalf("first register: %v", err)
	}

	err := reg.Register(ImportSpec{Path: "react", LocalName: "Preact"})
	var conflict *ImportConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("want ImportConflictError, got %v", err)
	}
	if conflict.Existing != "React" || conflict.Requested != "Preact" {
		t.Fatalf("unexpected conflict detail: %+v", conflict)
	}
}

func TestImportRegistryAliasConflict(t *testing.T) {
	reg := NewImportRegistry()
	if err := reg.Register(ImportSpec{Path: "@acme/ui", ExportedName: "Card", Alias: "UICard"}); err != nil {
		t.Fatalf("first register: %v", err)
	}

	err := reg.Register(ImportSpec{Path: "@acme/ui", ExportedName: "Card"})
	var conflict *ImportConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("want ImportConflictError, got %v", err)
	}
}

func TestImportRegistryIdempotentRegistration(t *testing.T) {
	reg := NewImportRegistry()
	spec := ImportSpec{Path: "@acme/ui", ExportedName: "Card", Alias: "UICard"}
	for i := 0; i < 3; i++ {
		if err := reg.Register(spec); err != nil {
			t.Fatalf("register #%d: %v", i+1, err)
		}
	}

	want := []string{`import { Card as UICard } from "@acme/ui";`}
	if diff := cmp.Diff(want, reg.Finalize()); diff != "" {
		t.Fatalf("finalize mismatch (-want +got):\n%s", diff)
	}
}

func TestImportRegistryRejectsIncompleteSpecs(t *testing.T) {
	reg := NewImportRegistry()
	if err := reg.Register(ImportSpec{ExportedName: "Card"}); err == nil {
		t.Fatal("expected error for missing path")
	}
	if err := reg.Register(ImportSpec{Path: "@acme/ui"}); err == nil {
		t.Fatal("expected error for missing names")
	}
}

func TestImportRegistryMixedDefaultAndNamed(t *testing.T) {
	reg := NewImportRegistry()
	if err := reg.Register(ImportSpec{Path: "react", LocalName: "React"}); err != nil {
		t.Fatalf("register default: %v", err)
	}
	if err := reg.Register(ImportSpec{Path: "react", ExportedName: "useState"}); err != nil {
		t.Fatalf("register named: %v", err)
	}

	want := []string{`import React, { useState } from "react";`}
	if diff := cmp.Diff(want, reg.Finalize()); diff != "" {
		t.Fatalf("finalize mismatch (-want +got):\n%s", diff)
	}
}
