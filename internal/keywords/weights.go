// Package keywords extracts ranked, weighted keywords from job description
// text using a static domain weight table tuned for cybersecurity and
// adjacent tech roles.
package keywords

import "strings"

// strongStandaloneWeight is the unigram weight at or above which a term
// survives suppression even when it is a component of a matched phrase.
const strongStandaloneWeight = 1.5

// domainWeights maps known unigrams and phrases to relevance multipliers.
// Unknown terms default to 1.0. Flat immutable data; a single
// lookup-with-fallback function (WeightOf) is the only access path.
var domainWeights = map[string]float64{
	// threat landscape
	"malware": 1.9, "ransomware": 1.9, "phishing": 1.7, "vishing": 1.4,
	"smishing": 1.4, "botnet": 1.7, "trojan": 1.6, "rootkit": 1.7,
	"spyware": 1.6, "apt": 1.6, "adversary": 1.6, "exploit": 1.7,
	"vulnerability": 1.5, "cve": 1.7, "shellcode": 1.8, "payload": 1.4,
	"implant": 1.5, "c2": 1.6, "obfuscation": 1.7, "deobfuscation": 1.8,
	"emotet": 1.6, "qakbot": 1.6, "lockbit": 1.7,

	// disciplines
	"osint": 1.9, "forensics": 1.7, "fuzzing": 1.8, "unpacking": 1.6,
	"disassembly": 1.7, "decompilation": 1.7, "cryptography": 1.6,
	"encryption": 1.4, "steganography": 1.5, "hunting": 1.4,
	"detection": 1.4, "threat": 1.4, "intelligence": 1.3, "intel": 1.3,
	"cybersecurity": 1.5, "infosec": 1.5, "security": 1.2,
	"emulation": 1.4, "triage": 1.5, "attribution": 1.6,

	// frameworks, standards, telemetry
	"mitre": 1.8, "att&ck": 2.0, "ttps": 1.8, "ioc": 1.7, "iocs": 1.6,
	"cti": 1.8, "siem": 1.8, "soar": 1.7, "edr": 1.7, "xdr": 1.6,
	"soc": 1.6, "stix": 1.7, "taxii": 1.7, "misp": 1.8, "sigma": 1.6,
	"yara": 1.9, "nist": 1.4, "owasp": 1.6,

	// tooling
	"ghidra": 1.9, "ida": 1.7, "radare2": 1.7, "volatility": 1.7,
	"wireshark": 1.6, "zeek": 1.7, "snort": 1.6, "suricata": 1.7,
	"splunk": 1.6, "elasticsearch": 1.4, "kibana": 1.3, "metasploit": 1.6,
	"burp": 1.5, "nmap": 1.5, "kali": 1.4, "shodan": 1.7, "maltego": 1.6,
	"virustotal": 1.6, "cuckoo": 1.5, "honeypot": 1.6, "honeypots": 1.5,
	"sandbox": 1.4,

	// languages and platforms
	"python": 1.6, "golang": 1.5, "go": 1.3, "rust": 1.5, "java": 1.3,
	"javascript": 1.4, "typescript": 1.4, "bash": 1.3, "powershell": 1.6,
	"assembly": 1.4, "sql": 1.2, "linux": 1.4, "windows": 1.2,
	"kernel": 1.5, "syscall": 1.4, "firmware": 1.5, "iot": 1.4,
	"scada": 1.6, "ics": 1.5,

	// infrastructure and engineering
	"kubernetes": 1.5, "docker": 1.4, "terraform": 1.4, "aws": 1.5,
	"azure": 1.4, "gcp": 1.4, "ci/cd": 1.5, "devops": 1.4,
	"devsecops": 1.7, "api": 1.1, "microservices": 1.3, "grpc": 1.3,
	"redis": 1.2, "postgresql": 1.3, "automation": 1.3, "scripting": 1.3,

	// ai / data
	"ai": 1.3, "ml": 1.3, "llm": 1.6, "llms": 1.5, "nlp": 1.4,
	"pytorch": 1.5, "tensorflow": 1.5, "pandas": 1.3, "numpy": 1.2,
	"jupyter": 1.3,

	// phrases
	"threat intelligence": 2.0, "threat hunting": 2.0, "threat detection": 1.8,
	"threat modeling": 1.8, "mitre att&ck": 2.2, "malware analysis": 2.2,
	"reverse engineering": 2.0, "incident response": 2.0,
	"vulnerability research": 2.1, "exploit development": 2.1,
	"penetration testing": 1.9, "security research": 1.9,
	"detection engineering": 2.0, "digital forensics": 1.9,
	"memory forensics": 2.0, "binary analysis": 2.0, "static analysis": 1.8,
	"dynamic analysis": 1.8, "yara rules": 2.0, "red team": 1.8,
	"blue team": 1.7, "purple team": 1.7, "security operations": 1.7,
	"cloud security": 1.8, "application security": 1.8,
	"network security": 1.7, "dark web": 1.7, "social engineering": 1.6,
	"supply chain": 1.5, "zero trust": 1.6, "attack surface": 1.6,
	"machine learning": 1.8, "deep learning": 1.7, "data analysis": 1.4,
	"natural language processing": 1.7, "large language models": 1.8,
	"open source": 1.4, "security awareness": 1.4,
}

// WeightOf returns the relevance multiplier for a term: exact match first,
// then a hyphen<->space normalization fallback, defaulting to 1.0.
func WeightOf(term string) float64 {
	if w, ok := domainWeights[term]; ok {
		return w
	}
	if strings.Contains(term, "-") {
		if w, ok := domainWeights[strings.ReplaceAll(term, "-", " ")]; ok {
			return w
		}
	}
	if strings.Contains(term, " ") {
		if w, ok := domainWeights[strings.ReplaceAll(term, " ", "-")]; ok {
			return w
		}
	}
	return 1.0
}
