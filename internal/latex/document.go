package latex

import (
	"strings"

	"github.com/tdnghia/jobportal/internal/dto"
)

const preamble = `\documentclass[11pt,a4paper]{article}
\usepackage[utf8]{inputenc}
\usepackage[T1]{fontenc}
\usepackage{lmodern}
\usepackage[margin=1in]{geometry}
\usepackage{hyperref}
\usepackage{fontawesome5}
\usepackage{titlesec}
\usepackage{enumitem}
\usepackage{xcolor}

\definecolor{primary}{RGB}{106, 56, 194}
\definecolor{secondary}{RGB}{159, 103, 228}

\titleformat{\section}{\Large\bfseries}{}{0em}{\color{primary}}[\titlerule]
\titlespacing*{\section}{0pt}{12pt}{8pt}

\titleformat{\subsection}{\large\bfseries}{}{0em}{\color{secondary}}
\titlespacing*{\subsection}{0pt}{8pt}{4pt}
`

// BuildResume assembles the intermediate LaTeX document for a resume payload.
// Every free-text field goes through Escape; a section is emitted only when
// its input is non-empty, so an all-empty payload yields just the header.
func BuildResume(p dto.ResumePayload) string {
	var b strings.Builder
	b.WriteString(preamble)
	b.WriteString("\n\\begin{document}\n\n")

	writeHeader(&b, p.PersonalInfo)

	if strings.TrimSpace(p.Summary) != "" {
		b.WriteString("\\section{Professional Summary}\n")
		b.WriteString(Escape(p.Summary))
		b.WriteString("\n\n")
	}

	writeExperience(&b, p.Experience)
	writeEducation(&b, p.Education)
	writeSkills(&b, p.Skills)
	writeProjects(&b, p.Projects)
	writeCertifications(&b, p.Certifications)

	b.WriteString("\\end{document}\n")
	return b.String()
}

func writeHeader(b *strings.Builder, info dto.PersonalInfo) {
	b.WriteString("\\begin{center}\n")
	b.WriteString("    {\\Huge\\bfseries " + Escape(info.FullName) + "}\\\\[0.5em]\n")

	var contacts []string
	if info.Email != "" {
		contacts = append(contacts, "\\faEnvelope\\ \\href{mailto:"+Escape(info.Email)+"}{"+Escape(info.Email)+"}")
	}
	if info.Phone != "" {
		contacts = append(contacts, "\\faPhone\\ "+Escape(info.Phone))
	}
	if info.Location != "" {
		contacts = append(contacts, "\\faMapMarker\\ "+Escape(info.Location))
	}
	if info.LinkedIn != "" {
		contacts = append(contacts, "\\faLinkedin\\ \\href{"+Escape(info.LinkedIn)+"}{LinkedIn}")
	}
	if info.GitHub != "" {
		contacts = append(contacts, "\\faGithub\\ \\href{"+Escape(info.GitHub)+"}{GitHub}")
	}
	if len(contacts) > 0 {
		b.WriteString("    {\\small " + strings.Join(contacts, " | ") + "}\n")
	}
	b.WriteString("\\end{center}\n\n")
}

func writeExperience(b *strings.Builder, entries []dto.ExperienceEntry) {
	if len(entries) == 0 {
		return
	}
	b.WriteString("\\section{Professional Experience}\n")
	for _, exp := range entries {
		heading := Escape(exp.Position)
		if exp.Company != "" {
			heading += " | " + Escape(exp.Company)
		}
		b.WriteString("\\subsection{" + heading + "}\n")

		meta := joinNonEmpty(" | ", Escape(exp.Location), dateRange(exp.StartDate, exp.EndDate))
		if meta != "" {
			b.WriteString("\\textit{" + meta + "}\n")
		}

		items := make([]string, 0, len(exp.Achievements)+1)
		if exp.Description != "" {
			items = append(items, Escape(exp.Description))
		}
		for _, a := range exp.Achievements {
			if a != "" {
				items = append(items, Escape(a))
			}
		}
		writeItemize(b, items)
		b.WriteString("\n")
	}
}

func writeEducation(b *strings.Builder, entries []dto.EducationEntry) {
	if len(entries) == 0 {
		return
	}
	b.WriteString("\\section{Education}\n")
	for _, edu := range entries {
		heading := Escape(edu.Degree)
		if edu.Institution != "" {
			heading += " | " + Escape(edu.Institution)
		}
		b.WriteString("\\subsection{" + heading + "}\n")

		meta := joinNonEmpty(" | ", Escape(edu.Location), dateRange(edu.StartDate, edu.EndDate))
		if meta != "" {
			b.WriteString("\\textit{" + meta + "}\n")
		}
		if edu.GPA != "" {
			b.WriteString("\\textbf{GPA:} " + Escape(edu.GPA) + "\n")
		}
		b.WriteString("\n")
	}
}

func writeSkills(b *strings.Builder, s dto.Skills) {
	technical := nonEmpty(s.Technical)
	soft := nonEmpty(s.Soft)
	languages := nonEmpty(s.Languages)
	if len(technical) == 0 && len(soft) == 0 && len(languages) == 0 {
		return
	}
	b.WriteString("\\section{Skills}\n")
	writeSkillGroup(b, "Technical Skills", technical)
	writeSkillGroup(b, "Soft Skills", soft)
	writeSkillGroup(b, "Languages", languages)
}

func writeSkillGroup(b *strings.Builder, title string, skills []string) {
	if len(skills) == 0 {
		return
	}
	escaped := make([]string, len(skills))
	for i, s := range skills {
		escaped[i] = Escape(s)
	}
	b.WriteString("\\subsection{" + title + "}\n")
	b.WriteString(strings.Join(escaped, ", ") + "\n\n")
}

func writeProjects(b *strings.Builder, entries []dto.ProjectEntry) {
	if len(entries) == 0 {
		return
	}
	b.WriteString("\\section{Projects}\n")
	for _, project := range entries {
		name := project.Name
		if name == "" {
			name = "Project"
		}
		b.WriteString("\\subsection{" + Escape(name) + "}\n")
		if project.Technologies != "" {
			b.WriteString("\\textit{Technologies: " + Escape(project.Technologies) + "}\n")
		}
		if project.Link != "" {
			b.WriteString("\\\\\\href{" + Escape(project.Link) + "}{Project Link}\n")
		}
		if project.Description != "" {
			writeItemize(b, []string{Escape(project.Description)})
		}
		b.WriteString("\n")
	}
}

func writeCertifications(b *strings.Builder, entries []dto.CertificationEntry) {
	if len(entries) == 0 {
		return
	}
	b.WriteString("\\section{Certifications}\n")
	for _, cert := range entries {
		b.WriteString("\\subsection{" + Escape(cert.Name) + "}\n")
		meta := joinNonEmpty(" | ", Escape(cert.Issuer), Escape(cert.Date))
		if meta != "" {
			b.WriteString("\\textit{" + meta + "}\n")
		}
		if cert.Link != "" {
			b.WriteString("\\\\\\href{" + Escape(cert.Link) + "}{Certification Link}\n")
		}
		b.WriteString("\n")
	}
}

func writeItemize(b *strings.Builder, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\\begin{itemize}[leftmargin=*]\n")
	for _, item := range items {
		b.WriteString("    \\item " + item + "\n")
	}
	b.WriteString("\\end{itemize}\n")
}

func dateRange(start, end string) string {
	if start == "" && end == "" {
		return ""
	}
	return Escape(start) + " - " + Escape(end)
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func nonEmpty(values []string) []string {
	var kept []string
	for _, v := range values {
		if v != "" {
			kept = append(kept, v)
		}
	}
	return kept
}
