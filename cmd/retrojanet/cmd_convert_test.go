package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const ticketService = `package com.example.tickets;

import com.example.tickets.model.Ticket;
import retrofit2.http.*;

public interface TicketService {
    @GET("/tickets/{id}")
    Ticket ticket(@Path("id") long id);

    @DELETE("/tickets/{id}")
    void close(@Path("id") long id, @Header("X-Reason") String reason);

    Ticket local();
}
`

func writeService(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "TicketService.java")
	if err := os.WriteFile(path, []byte(ticketService), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	if args == nil {
		args = []string{}
	}
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	src := writeService(t)
	outDir := filepath.Join(t.TempDir(), "actions")

	out, err := run(t, src, "--output", outDir, "--package", "com.example.actions")
	if err != nil {
		t.Fatalf("Command failed: %v\n%s", err, out)
	}

	for _, name := range []string{"TicketAction.java", "CloseAction.java"} {
		path := filepath.Join(outDir, name)
		if !strings.Contains(out, "File "+path+" saved") {
			t.Errorf("Expected save message for %s, got:\n%s", path, out)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Expected %s to be written: %v", name, err)
		}
		if !strings.HasPrefix(string(data), "package com.example.actions;\n") {
			t.Errorf("Expected overridden package in %s:\n%s", name, data)
		}
	}
	if n := strings.Count(out, reviewNotice); n != 2 {
		t.Errorf("Expected review notice after each file, got %d in:\n%s", n, out)
	}
	if strings.Index(out, "TicketAction.java") > strings.Index(out, "CloseAction.java") {
		t.Errorf("Expected files reported in method order:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(outDir, "LocalAction.java")); !os.IsNotExist(err) {
		t.Error("Expected method without verb to be skipped")
	}

	data, _ := os.ReadFile(filepath.Join(outDir, "CloseAction.java"))
	for _, fragment := range []string{
		`@HttpAction(value = "/tickets/{id}", method = HttpAction.Method.DELETE)`,
		"    @RequestHeader(\"X-Reason\")\n    String reason;\n",
		"import io.techery.janet.http.annotations.RequestHeader;\n",
	} {
		if !strings.Contains(string(data), fragment) {
			t.Errorf("Expected CloseAction.java to contain %q\n%s", fragment, data)
		}
	}
}

func TestConvertCommandErrors(t *testing.T) {
	t.Run("missing argument", func(t *testing.T) {
		if _, err := run(t); err == nil {
			t.Error("Expected error without source file")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, filepath.Join(t.TempDir(), "Nope.java"), "--output", t.TempDir())
		if err == nil {
			t.Fatal("Expected error for missing file")
		}
		if !strings.Contains(err.Error(), "Nope.java") {
			t.Errorf("Expected error to name the file, got %v", err)
		}
	})
}

func TestPlanCommand(t *testing.T) {
	src := writeService(t)

	t.Run("line", func(t *testing.T) {
		out, err := run(t, "plan", src)
		if err != nil {
			t.Fatalf("Command failed: %v", err)
		}
		if !strings.Contains(out, "action\tTicketAction\t@HttpAction(\"/tickets/{id}\")\n") {
			t.Errorf("Unexpected output:\n%s", out)
		}
		if !strings.Contains(out, "action\tCloseAction\t") {
			t.Errorf("Expected CloseAction in output:\n%s", out)
		}
	})

	t.Run("java", func(t *testing.T) {
		out, err := run(t, "plan", "--format", "java", "-p", "com.example.actions", src)
		if err != nil {
			t.Fatalf("Command failed: %v", err)
		}
		if strings.Count(out, "package com.example.actions;") != 2 {
			t.Errorf("Expected two rendered classes:\n%s", out)
		}
	})

	t.Run("json", func(t *testing.T) {
		out, err := run(t, "plan", "-f", "json", src)
		if err != nil {
			t.Fatalf("Command failed: %v", err)
		}
		if !strings.Contains(out, `"name": "TicketAction"`) {
			t.Errorf("Unexpected output:\n%s", out)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if _, err := run(t, "plan", "-f", "xml", src); err == nil {
			t.Error("Expected error for unknown format")
		}
	})

	t.Run("writes nothing", func(t *testing.T) {
		dir := t.TempDir()
		wd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		if err := os.Chdir(dir); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { os.Chdir(wd) })

		if _, err := run(t, "plan", src); err != nil {
			t.Fatal(err)
		}
		entries, _ := os.ReadDir(dir)
		if len(entries) != 0 {
			t.Errorf("Expected no files written, got %d", len(entries))
		}
	})
}

func TestParseCommand(t *testing.T) {
	out, err := run(t, "parse", writeService(t))
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	for _, fragment := range []string{`"kind": "program"`, `"kind": "method_declaration"`, `"token": "ticket"`, `"field": "name"`} {
		if !strings.Contains(out, fragment) {
			t.Errorf("Expected output to contain %s", fragment)
		}
	}
}
