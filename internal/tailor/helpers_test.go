package tailor

import (
	"fmt"

	"github.com/jacobdsantos/resume-tailor/internal/types"
)

// testMaster builds a validated-shaped master with variant tables and enough
// bullets to exercise page trimming.
func testMaster() *types.ResumeMaster {
	m := &types.ResumeMaster{
		Basics: types.Basics{
			Name:  "Jacob Santos",
			Label: "Threat Researcher",
			Email: "jacob@example.com",
			Links: []types.Link{{Label: "GitHub", URL: "https://github.com/jacobdsantos"}},
		},
		Summaries: []types.Summary{
			{Text: "Threat researcher focused on ransomware ecosystems.", Keywords: []string{"ransomware", "malware"}},
			{Text: "Security engineer building detection tooling.", Keywords: []string{"detection", "golang"}},
		},
		Skills: []types.SkillGroup{
			{Group: "Languages", Items: []string{"Java", "Python", "Go"}},
			{Group: "Analysis", Items: []string{"Ghidra", "Wireshark", "Volatility"}},
		},
		Projects: []types.Project{
			{
				ID: "proj-iocs", Name: "IOC Enrichment Pipeline",
				Summary: "Automated enrichment of indicators with OSINT sources.",
				Tags:    []string{"osint", "python"},
				Bullets: []types.Bullet{{ID: "pb-1", Text: "Enriched 50k indicators daily with Python workers."}},
			},
			{
				ID: "proj-site", Name: "Personal Site",
				Summary: "Static portfolio site.",
				Tags:    []string{"web"},
				Bullets: []types.Bullet{{ID: "pb-2", Text: "Built a static site generator."}},
			},
		},
		Education: []types.EducationEntry{
			{ID: "edu-1", Institution: "State University", Degree: "BSc Computer Science"},
		},
		Certifications: []types.Certification{
			{ID: "cert-1", Name: "GREM", Issuer: "GIAC"},
		},
		Publications: []types.Publication{
			{ID: "pub-1", Title: "Dissecting a Ransomware Affiliate Program"},
			{ID: "pub-2", Title: "Notes on Go Build Systems"},
			{ID: "pub-3", Title: "Hunting Infostealers with YARA"},
			{ID: "pub-4", Title: "A Quiet Year in Phishing Kits"},
		},
		BulletVariants: map[string]map[string]string{},
	}

	// Four jobs with six bullets each: 24 authored bullets total.
	for i := 1; i <= 4; i++ {
		entry := types.ExperienceEntry{
			ID:        fmt.Sprintf("exp-%d", i),
			Company:   fmt.Sprintf("Company %d", i),
			Role:      "Security Analyst",
			StartDate: fmt.Sprintf("201%d-01", i),
		}
		for j := 1; j <= 6; j++ {
			id := fmt.Sprintf("b-%d-%d", i, j)
			entry.Bullets = append(entry.Bullets, types.Bullet{
				ID:   id,
				Text: fmt.Sprintf("Investigated security incidents for team %d case %d.", i, j),
			})
		}
		m.Experience = append(m.Experience, entry)
	}

	// One bullet gets a full variant table.
	m.BulletVariants["b-1-1"] = map[string]string{
		"default":      "Analyzed malicious samples across platforms.",
		"research":     "Reverse engineered ransomware families and published malware analysis reports.",
		"threat_intel": "Tracked adversary infrastructure and produced threat intelligence briefings.",
	}
	// And one gets variants that never match anything.
	m.BulletVariants["b-1-2"] = map[string]string{
		"default":    "Maintained internal tooling.",
		"leadership": "Chaired the weekly tooling sync.",
	}

	return m
}

const ransomwareJD = `Job Title: Senior Threat Researcher
We need deep malware analysis and ransomware expertise. You will produce
threat intelligence reporting, hunt with YARA, run OSINT collection in
Python, and map activity to MITRE ATT&CK.`
